package models

// SettingsID is the fixed key of the single site settings document.
const SettingsID = "site"

type SiteSettings struct {
	ID          string            `bson:"_id" json:"-"`
	SiteName    string            `bson:"site_name" json:"siteName"`
	Tagline     string            `bson:"tagline" json:"tagline"`
	Email       string            `bson:"email" json:"email"`
	Phone       string            `bson:"phone" json:"phone"`
	Whatsapp    string            `bson:"whatsapp" json:"whatsapp"`
	Address     string            `bson:"address" json:"address"`
	SocialMedia map[string]string `bson:"social_media" json:"socialMedia"`
}

func DefaultSettings() SiteSettings {
	return SiteSettings{
		ID:       SettingsID,
		SiteName: "CartLink.id",
		Tagline:  "Platform Produk Digital #1 di Indonesia",
		Email:    "support@cartlink.id",
		Phone:    "+62 812-3456-7890",
		Whatsapp: "6281234567890",
		Address:  "Jakarta, Indonesia",
		SocialMedia: map[string]string{
			"facebook":  "#",
			"instagram": "#",
			"twitter":   "#",
			"youtube":   "#",
			"tiktok":    "#",
		},
	}
}
