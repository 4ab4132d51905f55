package models

type Category struct {
	ID          string `bson:"_id" json:"id"`
	Title       string `bson:"title" json:"title" binding:"required"`
	Slug        string `bson:"slug" json:"slug"`
	Icon        string `bson:"icon" json:"icon"`
	Description string `bson:"description" json:"description"`
}

// DefaultCategories seed a fresh store with the standard digital-product
// catalog sections.
var DefaultCategories = []Category{
	{ID: "ebook", Title: "Ebook", Slug: "ebook", Icon: "📚", Description: "Koleksi ebook digital berkualitas"},
	{ID: "kelas", Title: "Kelas Digital", Slug: "kelas-digital", Icon: "🎓", Description: "Kelas online dan kursus digital"},
	{ID: "video", Title: "Video Animasi", Slug: "video-animasi", Icon: "🎬", Description: "Video animasi dan konten multimedia"},
	{ID: "template", Title: "Template", Slug: "template", Icon: "📝", Description: "Template desain dan dokumen"},
	{ID: "software", Title: "Software & Plugin", Slug: "software-plugin", Icon: "💻", Description: "Software, tools, dan plugin"},
	{ID: "audio", Title: "Audio & Musik", Slug: "audio-musik", Icon: "🎵", Description: "Audio, musik, dan sound effect"},
}
