package http

import (
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

var registerSwaggerOnce sync.Once

type swaggerDoc string

func (d swaggerDoc) ReadDoc() string {
	return string(d)
}

// registerSwaggerDoc publishes the OpenAPI document to the swagger UI handler.
// Only the first document is kept.
func registerSwaggerDoc(doc *openapi3.T) error {
	data, err := doc.MarshalJSON()
	if err != nil {
		return err
	}
	registerSwaggerOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc(data))
	})
	return nil
}
