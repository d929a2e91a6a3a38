package swydo

import "time"

// Team represents a Swydo team.
type Team struct {
	ID           string     `json:"id"                     yaml:"id"`
	Name         string     `json:"name"                   yaml:"name"`
	Cancelled    bool       `json:"cancelled,omitempty"    yaml:"cancelled,omitempty"`
	PaymentPlan  string     `json:"paymentPlan,omitempty"  yaml:"paymentPlan,omitempty"`
	CreatedAt    *time.Time `json:"createdAt,omitempty"    yaml:"createdAt,omitempty"`
	CancelledAt  *time.Time `json:"cancelledAt,omitempty"  yaml:"cancelledAt,omitempty"`
	LastActiveAt *time.Time `json:"lastActiveAt,omitempty" yaml:"lastActiveAt,omitempty"`
}

// User represents a member of a team.
type User struct {
	ID    string    `json:"id"              yaml:"id"`
	Email string    `json:"email,omitempty" yaml:"email,omitempty"`
	Name  string    `json:"name,omitempty"  yaml:"name,omitempty"`
	State UserState `json:"state,omitempty" yaml:"state,omitempty"`
}

// BrandTemplate represents a brand template used to style reports.
type BrandTemplate struct {
	ID   string `json:"id"             yaml:"id"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// ReportTemplate represents a report layout template.
type ReportTemplate struct {
	ID   string `json:"id"             yaml:"id"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Connection represents an authorized link between a team user and an
// external marketing data provider.
type Connection struct {
	ID         string `json:"id"                   yaml:"id"`
	Name       string `json:"name,omitempty"       yaml:"name,omitempty"`
	UserID     string `json:"userId,omitempty"     yaml:"userId,omitempty"`
	ProviderID string `json:"providerId,omitempty" yaml:"providerId,omitempty"`
}

// ConnectionListOptions narrows a connection listing. Zero-value fields
// are omitted from the request entirely.
type ConnectionListOptions struct {
	UserID     string
	ProviderID string
}

// ClientAccount represents a client of the team, the end customer a
// report is produced for.
type ClientAccount struct {
	ID          string `json:"id"                    yaml:"id"`
	Name        string `json:"name"                  yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Email       string `json:"email,omitempty"       yaml:"email,omitempty"`
	Archived    bool   `json:"archived,omitempty"    yaml:"archived,omitempty"`
}

// ClientCreate is the payload for creating a client account. Description
// and Email are optional and omitted when empty.
type ClientCreate struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Email       string `json:"email,omitempty"`
}

// ClientUpdate is the payload for updating a client account. Empty fields
// are omitted and left untouched server-side.
type ClientUpdate struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Email       string `json:"email,omitempty"`
}

// DataSource represents one data source attached to a client account.
type DataSource struct {
	Type         string          `json:"type,omitempty"         yaml:"type,omitempty"`
	ConnectionID string          `json:"connectionId,omitempty" yaml:"connectionId,omitempty"`
	Scope        DataSourceScope `json:"scope,omitempty"        yaml:"scope,omitempty"`
}

// ClientDataSources is the set of data sources configured for a client
// account.
type ClientDataSources struct {
	ID          string       `json:"id"          yaml:"id"`
	DataSources []DataSource `json:"dataSources" yaml:"dataSources"`
}

// DataSourceScope identifies the remote account a data source reads from.
// Providers use different subsets of the fields; unused fields are omitted
// from the wire payload.
type DataSourceScope struct {
	ID            string `json:"id,omitempty"`
	Name          string `json:"name,omitempty"`
	PageID        string `json:"pageId,omitempty"`
	ClientID      string `json:"clientId,omitempty"`
	AccountID     string `json:"accountId,omitempty"`
	AccountName   string `json:"accountName,omitempty"`
	WebPropertyID string `json:"webPropertyId,omitempty"`
	ProfileID     string `json:"profileId,omitempty"`
	CurrencyCode  string `json:"currencyCode,omitempty"`
}

// DataSourceCreate is the wire payload shared by all Set* data source
// operations.
type DataSourceCreate struct {
	ConnectionID string          `json:"connectionId"`
	Scope        DataSourceScope `json:"scope"`
}

// FacebookAdsDataSource configures a Facebook Ads data source.
type FacebookAdsDataSource struct {
	ConnectionID string
	// AccountID is the Facebook ad account identifier.
	AccountID string
	Name      string
	// CurrencyCode is optional.
	CurrencyCode string
}

// FacebookGraphDataSource configures a Facebook Graph (page insights)
// data source.
type FacebookGraphDataSource struct {
	ConnectionID string
	AccountID    string
	Name         string
	PageID       string
}

// GoogleAdWordsDataSource configures a Google Ads data source.
type GoogleAdWordsDataSource struct {
	ConnectionID string
	// ClientID is the Google Ads client customer identifier.
	ClientID string
	Name     string
	// CurrencyCode is optional.
	CurrencyCode string
}

// GoogleAnalyticsDataSource configures a Google Analytics data source.
type GoogleAnalyticsDataSource struct {
	ConnectionID  string
	AccountID     string
	AccountName   string
	Name          string
	WebPropertyID string
	ProfileID     string
	// CurrencyCode is optional.
	CurrencyCode string
}

// Report represents a Swydo report.
type Report struct {
	ID               string        `json:"id"                         yaml:"id"`
	Name             string        `json:"name"                       yaml:"name"`
	ClientID         string        `json:"clientId,omitempty"         yaml:"clientId,omitempty"`
	AuthorID         string        `json:"authorId,omitempty"         yaml:"authorId,omitempty"`
	BrandTemplateID  string        `json:"brandTemplateId,omitempty"  yaml:"brandTemplateId,omitempty"`
	ReportTemplateID string        `json:"reportTemplateId,omitempty" yaml:"reportTemplateId,omitempty"`
	ComparePeriod    ComparePeriod `json:"comparePeriod,omitempty"    yaml:"comparePeriod,omitempty"`
	Shared           bool          `json:"shared,omitempty"           yaml:"shared,omitempty"`
	ShareURL         string        `json:"shareUrl,omitempty"         yaml:"shareUrl,omitempty"`
}

// ReportCreate is the payload for creating a report. AuthorID is optional.
type ReportCreate struct {
	Name             string        `json:"name"`
	ClientID         string        `json:"clientId"`
	BrandTemplateID  string        `json:"brandTemplateId"`
	ReportTemplateID string        `json:"reportTemplateId"`
	ComparePeriod    ComparePeriod `json:"comparePeriod"`
	AuthorID         string        `json:"authorId,omitempty"`
}

// ReportUpdate is the payload for updating a report. Empty fields are
// omitted and left untouched server-side.
type ReportUpdate struct {
	Name             string        `json:"name,omitempty"`
	ClientID         string        `json:"clientId,omitempty"`
	BrandTemplateID  string        `json:"brandTemplateId,omitempty"`
	ReportTemplateID string        `json:"reportTemplateId,omitempty"`
	ComparePeriod    ComparePeriod `json:"comparePeriod,omitempty"`
	AuthorID         string        `json:"authorId,omitempty"`
}
