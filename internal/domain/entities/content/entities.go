// Package content defines the application's core content-related domain entities.
package content

// Item is the contract every bucket-resident record satisfies. IDs are
// ULIDs assigned when a creating draft commits, and are never reused.
type Item interface {
	ItemID() string
}

// Department is one academic department card on the Academics page.
type Department struct {
	ID          string   `json:"id"`
	Icon        string   `json:"icon"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Programs    []string `json:"programs"`
	Gradient    string   `json:"gradient"`
}

func (d Department) ItemID() string { return d.ID }

// Achievement is a headline stat shown on the Academics page.
type Achievement struct {
	ID          string `json:"id"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StatValue   string `json:"statValue"`
	StatLabel   string `json:"statLabel"`
}

func (a Achievement) ItemID() string { return a.ID }

// Event is a school event with long-form content and an inline image.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Category    string `json:"category"` // EventCategory name
	Date        string `json:"date"`     // YYYY-MM-DD
	Time        string `json:"time"`
	Location    string `json:"location"`
	Image       string `json:"image,omitempty"` // inline data-URL
	Attendees   int    `json:"attendees"`
	Published   bool   `json:"published"`
}

func (e Event) ItemID() string { return e.ID }

// EventCategory groups events; referenced by name from Event.Category.
type EventCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color,omitempty"`
	Description string `json:"description,omitempty"`
}

func (c EventCategory) ItemID() string { return c.ID }

// Facility is one campus facility card.
type Facility struct {
	ID          string   `json:"id"`
	Icon        string   `json:"icon"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Image       string   `json:"image,omitempty"`
}

func (f Facility) ItemID() string { return f.ID }

// GalleryImage is one photo in the school gallery.
type GalleryImage struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"` // GalleryCategory name
	Image    string `json:"image"`    // inline data-URL
	Caption  string `json:"caption,omitempty"`
	Date     string `json:"date,omitempty"` // YYYY-MM-DD
}

func (g GalleryImage) ItemID() string { return g.ID }

// GalleryCategory groups gallery images; referenced by name.
type GalleryCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (c GalleryCategory) ItemID() string { return c.ID }

// ExamEntryKind distinguishes exam days from holidays on the routine calendar.
type ExamEntryKind string

const (
	EntryExam    ExamEntryKind = "exam"
	EntryHoliday ExamEntryKind = "holiday"
)

// ClassAll matches every class filter.
const ClassAll = "All"

// ExamEntry is one dated entry on the exam routine calendar, tagged to a
// class ("1".."10") or to every class via ClassAll.
type ExamEntry struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Date      string        `json:"date"` // YYYY-MM-DD
	Class     string        `json:"class"`
	Kind      ExamEntryKind `json:"kind"`
	Subject   string        `json:"subject,omitempty"`
	StartTime string        `json:"startTime,omitempty"`
	EndTime   string        `json:"endTime,omitempty"`
}

func (e ExamEntry) ItemID() string { return e.ID }

// YearlyBook is one downloadable book reference for an academic year.
type YearlyBook struct {
	ID      string `json:"id"`
	Year    string `json:"year"` // AcademicYear.Year, "YYYY-YYYY"
	Class   string `json:"class"`
	Title   string `json:"title"`
	Subject string `json:"subject,omitempty"`
	URL     string `json:"url"`
	Cover   string `json:"cover,omitempty"` // inline data-URL
}

func (b YearlyBook) ItemID() string { return b.ID }

// AcademicYear is one selectable academic year, e.g. "2024-2025".
type AcademicYear struct {
	ID    string `json:"id"`
	Year  string `json:"year"`
	Label string `json:"label,omitempty"`
}

func (y AcademicYear) ItemID() string { return y.ID }

// BrandConfig is the single settings object behind the site branding bucket.
// It is a bucket value, not a collection item.
type BrandConfig struct {
	SchoolName     string `json:"schoolName"`
	Tagline        string `json:"tagline,omitempty"`
	PrimaryColor   string `json:"primaryColor,omitempty"`
	SecondaryColor string `json:"secondaryColor,omitempty"`
	ContactEmail   string `json:"contactEmail,omitempty"`
	ContactPhone   string `json:"contactPhone,omitempty"`
	Address        string `json:"address,omitempty"`
	Logo           string `json:"logo,omitempty"` // inline data-URL
}
