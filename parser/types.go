package parser

// DataType is the type of a variable, parameter, function result or expression.
type DataType int

const (
	TypeVoid DataType = iota
	TypeInt
	TypeReal
	TypeString
	TypeRef
	TypeList
	TypeDict
)

var typeNames = map[DataType]string{
	TypeVoid:   "void",
	TypeInt:    "int",
	TypeReal:   "real",
	TypeString: "string",
	TypeRef:    "ref",
	TypeList:   "list",
	TypeDict:   "dict",
}

func (t DataType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "invalid"
}

// IsContainer returns true for list and dict.
func (t DataType) IsContainer() bool {
	return t == TypeList || t == TypeDict
}

// IsNumeric returns true for int and real.
func (t DataType) IsNumeric() bool {
	return t == TypeInt || t == TypeReal
}

// typeSuffixes maps the type suffix characters onto data types.
var typeSuffixes = map[itemType]DataType{
	itemIntSuffix:    TypeInt,
	itemRealSuffix:   TypeReal,
	itemStringSuffix: TypeString,
	itemRefSuffix:    TypeRef,
	itemListSuffix:   TypeList,
	itemDictSuffix:   TypeDict,
}

func isTypeSuffix(typ itemType) bool {
	_, ok := typeSuffixes[typ]
	return ok
}

// compatible returns true if a value of type from can be used where a value
// of type to is expected. int and real convert into each other.
func compatible(to, from DataType) bool {
	if to == from {
		return to != TypeVoid
	}
	return to.IsNumeric() && from.IsNumeric()
}

// balance returns the common type of two compatible operands.
func balance(a, b DataType) DataType {
	if a == TypeReal || b == TypeReal {
		return TypeReal
	}
	return a
}

// castable returns true if an explicit type suffix may turn from into to.
func castable(to, from DataType) bool {
	isScalar := func(t DataType) bool {
		return t == TypeInt || t == TypeReal || t == TypeString
	}
	if isScalar(to) && isScalar(from) {
		return true
	}
	return to == from && to != TypeVoid
}
