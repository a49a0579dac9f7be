package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/damedic/sqltypes-go/internal/generate"
)

func main() {
	out := flag.String("out", "sqltype", "directory of the sqltype package")
	flag.Parse()

	path := filepath.Join(*out, "enums_gen.go")
	log.Println("generating enums...")
	f := generate.GenerateEnums("sqltype", generate.TypeIDs, generate.OperatorKinds)
	if err := f.Save(path); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", path)
}
