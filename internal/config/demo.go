package config

import "github.com/depeter/couchgallery/internal/carousel"

// DemoItems is the gallery shown when nothing else is configured.
func DemoItems() []carousel.Item {
	const q = "?w=800&h=600&fit=crop"
	return []carousel.Item{
		{ID: "1", Src: "https://images.unsplash.com/photo-1506905925346-21bda4d32df4" + q, Title: "Mountain Peak", Subtitle: "Majestic views at sunrise"},
		{ID: "2", Src: "https://images.unsplash.com/photo-1506794778202-cad84cf45f1d" + q, Title: "Ocean Waves", Subtitle: "Crashing waves at dusk"},
		{ID: "3", Src: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d" + q, Title: "Portrait", Subtitle: "Candid moment captured"},
		{ID: "4", Src: "https://images.unsplash.com/photo-1514080267045-ad881b06b470" + q, Title: "City Lights", Subtitle: "Urban landscape at night"},
		{ID: "5", Src: "https://images.unsplash.com/photo-1511379938547-c1f69b13d835" + q, Title: "Forest Path", Subtitle: "Nature's quiet sanctuary"},
		{ID: "6", Src: "https://images.unsplash.com/photo-1506905925346-21bda4d32df4" + q, Title: "Sunset", Subtitle: "Golden hour magic"},
	}
}
