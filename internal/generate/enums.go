package generate

import (
	"fmt"
	"strings"

	. "github.com/dave/jennifer/jen"
	"github.com/iancoleman/strcase"
)

// Enum describes a generated enumeration backed by an unsigned integer.
//
// Names are the SQL spellings, the first one being the zero value.
// Go identifiers are derived from them, e.g. "INTERVAL YEAR TO MONTH"
// with prefix "Type" becomes TypeIntervalYearToMonth.
type Enum struct {
	TypeName string
	Prefix   string
	Doc      string
	Names    []string
}

func (e Enum) ConstName(name string) string {
	return e.Prefix + strcase.ToCamel(strings.ToLower(name))
}

func (e Enum) namesVar() string {
	return strings.ToLower(e.TypeName[:1]) + e.TypeName[1:] + "Names"
}

func (e Enum) receiver() string {
	return strings.ToLower(e.TypeName[:1])
}

// TypeIDs are the SQL types known to the value system.
var TypeIDs = Enum{
	TypeName: "TypeID",
	Prefix:   "Type",
	Doc:      "TypeID identifies a SQL scalar type.",
	Names: []string{
		"UNKNOWN",
		"BOOLEAN",
		"BIGINT",
		"DOUBLE",
		"VARCHAR",
		"INTERVAL YEAR TO MONTH",
		"TIME",
		"TIME WITH TIME ZONE",
		"TIMESTAMP",
		"TIMESTAMP WITH TIME ZONE",
	},
}

// OperatorKinds are the operations a type may register.
var OperatorKinds = Enum{
	TypeName: "OperatorKind",
	Prefix:   "Operator",
	Doc:      "OperatorKind identifies an operation dispatched through the registry.",
	Names: []string{
		"UNKNOWN",
		"EQUAL",
		"NOT_EQUAL",
		"LESS_THAN",
		"LESS_OR_EQUAL",
		"GREATER_THAN",
		"GREATER_OR_EQUAL",
		"BETWEEN",
		"CAST",
		"HASH",
		"NEGATE",
		"ADD",
		"SUBTRACT",
		"MULTIPLY",
		"DIVIDE",
	},
}

// GenerateEnums renders all enums into a single file of package pkg.
func GenerateEnums(pkg string, enums ...Enum) *File {
	f := NewFile(pkg)
	f.HeaderComment("Code generated by internal/cmd/generate. DO NOT EDIT.")
	for _, e := range enums {
		generateEnum(f, e)
	}
	return f
}

func generateEnum(f *File, e Enum) {
	f.Comment(e.Doc)
	f.Type().Id(e.TypeName).Uint8()

	defs := make([]Code, 0, len(e.Names))
	for i, name := range e.Names {
		if i == 0 {
			defs = append(defs, Id(e.ConstName(name)).Id(e.TypeName).Op("=").Iota())
			continue
		}
		defs = append(defs, Id(e.ConstName(name)))
	}
	f.Const().Defs(defs...)

	names := make([]Code, 0, len(e.Names))
	for _, name := range e.Names {
		names = append(names, Lit(name))
	}
	f.Var().Id(e.namesVar()).Op("=").Index(Op("...")).String().Values(names...)

	r := e.receiver()
	f.Func().Params(Id(r).Id(e.TypeName)).Id("String").Params().String().Block(
		If(Int().Call(Id(r)).Op("<").Len(Id(e.namesVar()))).Block(
			Return(Id(e.namesVar()).Index(Id(r))),
		),
		Return(Lit(e.TypeName+"(").Op("+").Qual("strconv", "Itoa").Call(Int().Call(Id(r))).Op("+").Lit(")")),
	)

	f.Comment(fmt.Sprintf("Parse%s looks up a %s by its SQL name, ignoring case.", e.TypeName, e.TypeName))
	f.Func().Id("Parse"+e.TypeName).Params(Id("s").String()).Params(Id(e.TypeName), Bool()).Block(
		For(List(Id("i"), Id("name")).Op(":=").Range().Id(e.namesVar()).Index(Lit(1).Op(":"))).Block(
			If(Qual("strings", "EqualFold").Call(Id("name"), Id("s"))).Block(
				Return(Id(e.TypeName).Call(Id("i").Op("+").Lit(1)), True()),
			),
		),
		Return(Lit(0), False()),
	)
}
