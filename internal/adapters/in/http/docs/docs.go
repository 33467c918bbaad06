// Package docs serves the OpenAPI document to the swagger UI.
package docs

import (
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

type document struct {
	json string
}

func (d document) ReadDoc() string {
	return d.json
}

var (
	once        sync.Once
	registerErr error
)

// Register publishes swagger under swag.Name, where echo-swagger looks for
// doc.json. Only the first call has an effect.
func Register(swagger *openapi3.T) error {
	once.Do(func() {
		raw, err := swagger.MarshalJSON()
		if err != nil {
			registerErr = err
			return
		}
		swag.Register(swag.Name, document{json: string(raw)})
	})
	return registerErr
}
