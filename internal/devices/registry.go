package devices

import "fmt"

type schemaKey struct {
	typeCode    string
	featureCode string
}

// schemas maps device type and feature code pairs to their schema
// constructors. An empty feature code matches any feature line of the
// type.
var schemas = map[schemaKey]func() *Schema{
	{"009", "199"}: splitACSchema,
	{"035", "699"}: atwSchema,
	{"007", ""}:    dehumidifierSchema,
	{"013", ""}:    ovenSchema,
	{"043", ""}:    hubSchema,
	{"044", ""}:    zoneControllerSchema,
}

// beanTypeNames are the device types that fall back to the generic bean
// attribute set when no dedicated schema matches.
var beanTypeNames = map[string]string{
	"009": "Split AC",
	"008": "Window AC",
	"006": "Portable AC",
	"016": "Boiler",
}

// SchemaFor resolves the schema for a device. Resolution order is exact
// type and feature match, then type wildcard, then the generic bean set
// for the standard AC types.
func SchemaFor(typeCode, featureCode string) (*Schema, error) {
	if build, ok := schemas[schemaKey{typeCode, featureCode}]; ok {
		return build(), nil
	}
	if build, ok := schemas[schemaKey{typeCode, ""}]; ok {
		return build(), nil
	}
	if name, ok := beanTypeNames[typeCode]; ok {
		return beanSchema(typeCode, featureCode, name), nil
	}
	return nil, fmt.Errorf("unsupported device type: %s", typeCode)
}

// Supported reports whether SchemaFor can resolve the device type.
func Supported(typeCode string) bool {
	if _, ok := beanTypeNames[typeCode]; ok {
		return true
	}
	for key := range schemas {
		if key.typeCode == typeCode {
			return true
		}
	}
	return false
}
