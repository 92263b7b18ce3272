package sof

// Field identifies one extractable Statement of Facts field. The string
// values are part of the wire contract and must not change.
type Field string

const (
	FieldVesselName     Field = "vessel_name"
	FieldVoyageNumber   Field = "voyage_number"
	FieldArrivalTime    Field = "arrival_time"
	FieldDepartureTime  Field = "departure_time"
	FieldNORTime        Field = "nor_time"
	FieldLaytimeAllowed Field = "laytime_allowed"
	FieldCargoQuantity  Field = "cargo_quantity"
	FieldBerthInfo      Field = "berth_info"
	FieldPortName       Field = "port_name"
)

// criticalFields carry extra weight in the confidence score.
var criticalFields = []Field{FieldVesselName, FieldArrivalTime, FieldDepartureTime}

// RawExtraction maps each field to its ordered, de-duplicated candidate
// strings. A field with no matches maps to an empty slice, never nil.
type RawExtraction map[Field][]string
