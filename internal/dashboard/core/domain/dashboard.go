package domain

// KPIFormat tells the client how to render a KPI value.
type KPIFormat string

const (
	FormatNumber   KPIFormat = "number"
	FormatPercent  KPIFormat = "percent"
	FormatCurrency KPIFormat = "currency"
)

// TrafficCategory is a categorical origin of user sessions.
type TrafficCategory string

const (
	TrafficOrganic  TrafficCategory = "Organic"
	TrafficPaid     TrafficCategory = "Paid"
	TrafficReferral TrafficCategory = "Referral"
	TrafficSocial   TrafficCategory = "Social"
)

// TrafficCategories is the ordered category universe. The traffic mix and the
// recent-activity cycling both consume this single definition so the two
// stay consistent.
var TrafficCategories = [4]TrafficCategory{TrafficOrganic, TrafficPaid, TrafficReferral, TrafficSocial}

// ActivityStatus is the lifecycle state attached to a recent-activity record.
type ActivityStatus string

const (
	StatusActivated ActivityStatus = "Activated"
	StatusInvited   ActivityStatus = "Invited"
	StatusPending   ActivityStatus = "Pending"
	StatusChurnRisk ActivityStatus = "Churn Risk"
)

// ActivityStatuses is the ordered status enumeration cycled by record index.
var ActivityStatuses = [4]ActivityStatus{StatusActivated, StatusInvited, StatusPending, StatusChurnRisk}

// DateFormat is the calendar-date layout used for all date fields.
const DateFormat = "2006-01-02"

// DefaultRangeLabel is echoed when the client omits the range parameter.
const DefaultRangeLabel = "Last 30 days"

type KPI struct {
	Label  string
	Value  float64
	Delta  float64
	Icon   string
	Format KPIFormat
}

type TimeSeriesPoint struct {
	Date     string // DateFormat
	Users    int
	Sessions int
}

type FeatureUsage struct {
	Name  string
	Count int
}

type TrafficSource struct {
	Name  TrafficCategory
	Value int
}

type ActivityRecord struct {
	Name   string
	Email  string
	Date   string // DateFormat
	Source TrafficCategory
	Status ActivityStatus
}

type DashboardPayload struct {
	Range       string
	KPIs        []KPI
	Series      []TimeSeriesPoint
	Features    []FeatureUsage
	Traffic     []TrafficSource
	Recent      []ActivityRecord
	LastUpdated string // ISO-8601 with a trailing "Z"
}
