package testdata

import (
	"bytes"
	_ "embed"
	"encoding/xml"
	"log"
)

//go:embed operators.xml
var operatorsXML []byte

// GetOperatorTests decodes the embedded operator test suite.
func GetOperatorTests() OperatorTests {
	var tests OperatorTests
	err := xml.NewDecoder(bytes.NewReader(operatorsXML)).Decode(&tests)
	if err != nil {
		log.Fatal(err)
	}
	return tests
}

type OperatorTests struct {
	Name        string               `xml:"name,attr"`
	Description string               `xml:"description,attr"`
	Groups      []*OperatorTestGroup `xml:"group"`
}

type OperatorTestGroup struct {
	Name        string         `xml:"name,attr"`
	Description string         `xml:"description,attr"`
	Tests       []OperatorTest `xml:"test"`
}

// OperatorTest invokes one registry operator on literal arguments.
//
// Type and Operator name the signature by SQL name, Target is set for CAST.
// Either Output or Error is expected.
type OperatorTest struct {
	Name     string              `xml:"name,attr"`
	Type     string              `xml:"type,attr"`
	Operator string              `xml:"operator,attr"`
	Target   string              `xml:"target,attr"`
	Zone     string              `xml:"zone,attr"`
	Error    string              `xml:"error,attr"`
	Args     []OperatorTestValue `xml:"arg"`
	Output   *OperatorTestValue  `xml:"output"`
}

// OperatorTestValue is a literal in the canonical text form of its type.
type OperatorTestValue struct {
	Type  string `xml:"type,attr"`
	Value string `xml:",chardata"`
}
