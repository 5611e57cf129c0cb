package constants

// Object storage buckets served publicly.
const (
	BucketNewsImages         = "news-images"
	BucketTestimonialAvatars = "testimonial-avatars"
)

var AllowedBuckets = map[string]bool{
	BucketNewsImages:         true,
	BucketTestimonialAvatars: true,
}

// News/event categories.
const (
	CategoryNews         = "news"
	CategoryEvent        = "event"
	CategoryAnnouncement = "announcement"
)

var AllowedCategories = map[string]bool{
	CategoryNews:         true,
	CategoryEvent:        true,
	CategoryAnnouncement: true,
}

// Grade levels offered on the contact form.
const (
	GradePreK       = "pre-k"
	GradeElementary = "elementary"
	GradeMiddle     = "middle"
	GradeHigh       = "high"
)

var AllowedGradeLevels = map[string]bool{
	GradePreK:       true,
	GradeElementary: true,
	GradeMiddle:     true,
	GradeHigh:       true,
}

// Upload limits.
const MaxUploadBytes = 5 * 1024 * 1024
