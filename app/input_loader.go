package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/uilens/uilens/domain"
)

// InputLoader reads extraction files into domain inputs
type InputLoader struct{}

// NewInputLoader creates a new input loader
func NewInputLoader() *InputLoader {
	return &InputLoader{}
}

// LoadDesignFile reads a design extraction file. The top-level JSON value
// must be an array of components.
func (l *InputLoader) LoadDesignFile(path string) ([]domain.DesignComponent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewValidationError(fmt.Sprintf("cannot read design file %s: %v", path, err))
	}
	return l.ParseDesign(data, path)
}

// LoadImplementationFile reads an implementation extraction file. The
// top-level JSON value must be an array of elements.
func (l *InputLoader) LoadImplementationFile(path string) ([]domain.ImplementationElement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewValidationError(fmt.Sprintf("cannot read implementation file %s: %v", path, err))
	}
	return l.ParseImplementation(data, path)
}

// ParseDesign decodes design components from raw JSON
func (l *InputLoader) ParseDesign(data []byte, source string) ([]domain.DesignComponent, error) {
	if err := requireArray(data); err != nil {
		return nil, domain.NewValidationError(fmt.Sprintf("design input %s: %v", source, err))
	}
	var components []domain.DesignComponent
	if err := json.Unmarshal(data, &components); err != nil {
		return nil, domain.NewValidationError(fmt.Sprintf("design input %s: %v", source, err))
	}
	return components, nil
}

// ParseImplementation decodes implementation elements from raw JSON
func (l *InputLoader) ParseImplementation(data []byte, source string) ([]domain.ImplementationElement, error) {
	if err := requireArray(data); err != nil {
		return nil, domain.NewValidationError(fmt.Sprintf("implementation input %s: %v", source, err))
	}
	var elements []domain.ImplementationElement
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, domain.NewValidationError(fmt.Sprintf("implementation input %s: %v", source, err))
	}
	return elements, nil
}

// requireArray rejects inputs whose top-level JSON value is not a sequence
func requireArray(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	token, err := decoder.Token()
	if err != nil {
		if err == io.EOF {
			return fmt.Errorf("empty input")
		}
		return fmt.Errorf("invalid JSON: %v", err)
	}
	delim, ok := token.(json.Delim)
	if !ok || delim != '[' {
		return fmt.Errorf("top-level value must be an array")
	}
	return nil
}
