package query

// entity tags which table owns a filterable column
type entity int

const (
	entityUser entity = iota
	entityAddress
	entityRelationship
)

// kind selects the predicate applied for a filter key
type kind int

const (
	kindIExact kind = iota // case-insensitive equality on a text column
	kindNumber             // numeric equality
	kindDate               // calendar-day match on a date/timestamp column
)

// column is one routable filter target
type column struct {
	entity entity
	expr   string // fully qualified column, e.g. "address.city"
	kind   kind
}

// filterColumns maps every recognized exact-filter key to its column.
// Built once at startup; an incoming key either resolves here or is
// rejected. Keys follow the owning-entity precedence user > address >
// relationship, with address_id and relationship_id filtering by the
// related row's identifier directly.
var filterColumns = map[string]column{
	// AppUser fields
	"id":           {entityUser, "appuser.id", kindNumber},
	"first_name":   {entityUser, "appuser.first_name", kindIExact},
	"last_name":    {entityUser, "appuser.last_name", kindIExact},
	"gender":       {entityUser, "appuser.gender", kindIExact},
	"customer_id":  {entityUser, "appuser.customer_id", kindIExact},
	"phone_number": {entityUser, "appuser.phone_number", kindIExact},
	"birthday":     {entityUser, "appuser.birthday", kindDate},
	// Address fields
	"address_id":    {entityAddress, "appuser.address_id", kindNumber},
	"street":        {entityAddress, "address.street", kindIExact},
	"street_number": {entityAddress, "address.street_number", kindIExact},
	"city_code":     {entityAddress, "address.city_code", kindIExact},
	"city":          {entityAddress, "address.city", kindIExact},
	"country":       {entityAddress, "address.country", kindIExact},
	// CustomerRelationship fields
	"relationship_id": {entityRelationship, "customerrelationship.id", kindNumber},
	"points":          {entityRelationship, "customerrelationship.points", kindNumber},
}

// rangeColumns maps each date-range key family (base name, plus the
// _after and _before variants) to its timestamp column.
var rangeColumns = map[string]column{
	"appuser_created":      {entityUser, "appuser.created", kindDate},
	"last_updated":         {entityUser, "appuser.last_updated", kindDate},
	"relationship_created": {entityRelationship, "customerrelationship.created", kindDate},
	"last_activity":        {entityRelationship, "customerrelationship.last_activity", kindDate},
}

// sortColumns is the allow-list of sortable paths: every AppUser
// column under its bare name, related columns under their
// relation-prefixed names.
var sortColumns = map[string]string{
	"id":           "appuser.id",
	"first_name":   "appuser.first_name",
	"last_name":    "appuser.last_name",
	"gender":       "appuser.gender",
	"customer_id":  "appuser.customer_id",
	"phone_number": "appuser.phone_number",
	"created":      "appuser.created",
	"birthday":     "appuser.birthday",
	"last_updated": "appuser.last_updated",
	"address_id":   "appuser.address_id",

	"address__id":            "address.id",
	"address__street":        "address.street",
	"address__street_number": "address.street_number",
	"address__city_code":     "address.city_code",
	"address__city":          "address.city",
	"address__country":       "address.country",

	"customerrelationship__id":            "customerrelationship.id",
	"customerrelationship__points":        "customerrelationship.points",
	"customerrelationship__created":       "customerrelationship.created",
	"customerrelationship__last_activity": "customerrelationship.last_activity",
}
