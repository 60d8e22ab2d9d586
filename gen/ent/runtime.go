// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/camille-renard/nutrition-insights/db/ent/schema"
	"github.com/camille-renard/nutrition-insights/gen/ent/productinsight"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	productinsightFields := schema.ProductInsight{}.Fields()
	_ = productinsightFields
	// productinsightDescBarcode is the schema descriptor for barcode field.
	productinsightDescBarcode := productinsightFields[1].Descriptor()
	// productinsight.BarcodeValidator is a validator for the "barcode" field. It is called by the builders before save.
	productinsight.BarcodeValidator = func() func(string) error {
		validators := productinsightDescBarcode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(barcode string) error {
			for _, fn := range fns {
				if err := fn(barcode); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// productinsightDescType is the schema descriptor for type field.
	productinsightDescType := productinsightFields[2].Descriptor()
	// productinsight.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	productinsight.TypeValidator = func() func(string) error {
		validators := productinsightDescType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(_type string) error {
			for _, fn := range fns {
				if err := fn(_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// productinsightDescExtractorVersion is the schema descriptor for extractor_version field.
	productinsightDescExtractorVersion := productinsightFields[4].Descriptor()
	// productinsight.ExtractorVersionValidator is a validator for the "extractor_version" field. It is called by the builders before save.
	productinsight.ExtractorVersionValidator = productinsightDescExtractorVersion.Validators[0].(func(string) error)
	// productinsightDescSourceImage is the schema descriptor for source_image field.
	productinsightDescSourceImage := productinsightFields[5].Descriptor()
	// productinsight.SourceImageValidator is a validator for the "source_image" field. It is called by the builders before save.
	productinsight.SourceImageValidator = productinsightDescSourceImage.Validators[0].(func(string) error)
	// productinsightDescStatus is the schema descriptor for status field.
	productinsightDescStatus := productinsightFields[6].Descriptor()
	// productinsight.DefaultStatus holds the default value on creation for the status field.
	productinsight.DefaultStatus = productinsightDescStatus.Default.(string)
	// productinsight.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	productinsight.StatusValidator = productinsightDescStatus.Validators[0].(func(string) error)
	// productinsightDescOutdated is the schema descriptor for outdated field.
	productinsightDescOutdated := productinsightFields[9].Descriptor()
	// productinsight.DefaultOutdated holds the default value on creation for the outdated field.
	productinsight.DefaultOutdated = productinsightDescOutdated.Default.(bool)
	// productinsightDescCreatedAt is the schema descriptor for created_at field.
	productinsightDescCreatedAt := productinsightFields[10].Descriptor()
	// productinsight.DefaultCreatedAt holds the default value on creation for the created_at field.
	productinsight.DefaultCreatedAt = productinsightDescCreatedAt.Default.(func() time.Time)
	// productinsightDescID is the schema descriptor for id field.
	productinsightDescID := productinsightFields[0].Descriptor()
	// productinsight.DefaultID holds the default value on creation for the id field.
	productinsight.DefaultID = productinsightDescID.Default.(func() uuid.UUID)
}
