package content

// Bucket keys. Each key names one durable slot whose value is the JSON
// array for that domain (BucketBrand holds a single object instead).
const (
	BucketDepartments       = "royal-academy-academic-departments"
	BucketAchievements      = "royal-academy-achievements"
	BucketEvents            = "royal-academy-events"
	BucketEventCategories   = "royal-academy-event-categories"
	BucketFacilities        = "royal-academy-facilities"
	BucketGallery           = "royal-academy-gallery"
	BucketGalleryCategories = "royal-academy-gallery-categories"
	BucketExamRoutines      = "royal-academy-exam-routines"
	BucketYearlyBooks       = "royal-academy-yearly-books"
	BucketAvailableYears    = "royal-academy-available-years"
	BucketBrand             = "royal-academy-brand"
)

// CollectionBuckets lists every array-valued bucket, in the order they are
// seeded at startup.
var CollectionBuckets = []string{
	BucketDepartments,
	BucketAchievements,
	BucketEventCategories,
	BucketEvents,
	BucketFacilities,
	BucketGalleryCategories,
	BucketGallery,
	BucketExamRoutines,
	BucketAvailableYears,
	BucketYearlyBooks,
}
