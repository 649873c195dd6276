// Package meta holds the error taxonomy shared by the metagen packages.
//
// Classes are described with the schema and schema/property packages and
// rendered to source text by compiler/gen:
//
//	ime, _ := property.New("Ime", property.TypeString)
//	class, err := schema.NewClass("Testis", ime, property.String("Priimek").Descriptor())
//	if err != nil {
//	    return err
//	}
//	src, err := gen.Generate(class)
//
// Errors returned by any layer can be classified with [IsInvalidDescriptor],
// [IsUnresolvedType] and [IsNullInput].
package meta
