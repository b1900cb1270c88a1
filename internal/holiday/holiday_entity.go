package holiday

import (
	"time"

	"github.com/google/uuid"
)

type Holiday struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uq_holidays_date"`
	Year      int       `gorm:"not null;index:idx_holidays_year"`
	IsFloater bool      `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Holiday) TableName() string {
	return "holidays"
}

type seedHoliday struct {
	Name string
	Date string
}

// Official holiday list for 2026. A later iteration could pull these
// from a public API (e.g. Nager.Date) instead of shipping them.
var holidays2026 = []seedHoliday{
	{"Makar Sankranti", "2026-01-14"},
	{"Republic Day", "2026-01-26"},
	{"Holi", "2026-03-03"},
	{"Id-ul-Fitr", "2026-03-21"},
	{"Ram Navami", "2026-03-26"},
	{"Mahavir Jayanti", "2026-03-31"},
	{"Good Friday", "2026-04-03"},
	{"Buddha Purnima", "2026-05-01"},
	{"Bakrid / Eid al-Adha", "2026-05-27"},
	{"Muharram", "2026-06-26"},
	{"Independence Day", "2026-08-15"},
	{"Janmashtami", "2026-09-04"},
	{"Gandhi Jayanti", "2026-10-02"},
	{"Dussehra", "2026-10-20"},
	{"Diwali", "2026-11-08"},
	{"Guru Nanak Jayanti", "2026-11-24"},
	{"Christmas Day", "2026-12-25"},
}
