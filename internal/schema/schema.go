package schema

// Canonical field names, in output order. The order and exact casing are the
// contract of every downstream consumer; never reorder or rename.
const (
	FieldDate     = "Date"
	FieldName     = "Name"
	FieldAge      = "Age"
	FieldAddress  = "Address"
	FieldGender   = "Gender"
	FieldContact  = "Contact Number"
	FieldProduct  = "Product Purchased"
	FieldAmount   = "Amount"
	FieldQuantity = "Product Quantity"
	FieldEmail    = "Email"
)

// Fields is the canonical 10-column schema.
var Fields = [10]string{
	FieldDate,
	FieldName,
	FieldAge,
	FieldAddress,
	FieldGender,
	FieldContact,
	FieldProduct,
	FieldAmount,
	FieldQuantity,
	FieldEmail,
}

// Width is the fixed width of a canonical row.
const Width = len(Fields)

// Index returns the position of a canonical field, or -1 when the name is not
// part of the schema.
func Index(field string) int {
	for i, f := range Fields {
		if f == field {
			return i
		}
	}
	return -1
}

// TypeTag is the semantic type inferred for a column from sample values.
type TypeTag string

const (
	TypeEmpty    TypeTag = "empty"
	TypePhone    TypeTag = "phone"
	TypeEmail    TypeTag = "email"
	TypeCurrency TypeTag = "currency"
	TypeDate     TypeTag = "date"
	TypeNumber   TypeTag = "number"
	TypeString   TypeTag = "string"
)
