package file

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iwtcode/cncSimulator/internal/domain/entities"
)

// document - формат YAML-файла:
//
//	machines:
//	  - id: haas_vf2
//	    name: Haas VF-2
//	    kind: MILL
//	    x_max: 762
type document struct {
	Machines []entities.MachineDefinition `yaml:"machines"`
}

// Source читает описания парка из YAML-файла.
type Source struct {
	path string
}

func NewSource(path string) *Source {
	return &Source{path: path}
}

func (s *Source) Load() ([]entities.MachineDefinition, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать файл парка %s: %w", s.path, err)
	}
	defs, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("файл парка %s: %w", s.path, err)
	}
	return defs, nil
}

// Decode разбирает документ. Неизвестные поля считаются ошибкой.
func Decode(r io.Reader) ([]entities.MachineDefinition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}
	for i := range doc.Machines {
		doc.Machines[i].Position = i
	}
	return doc.Machines, nil
}
