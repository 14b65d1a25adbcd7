package simulator

import (
	"fmt"
	"math"

	"github.com/iwtcode/cncSimulator/internal/domain/models"
	"github.com/iwtcode/cncSimulator/pkg/errors"
)

const (
	millMagazineSize    = 24
	defaultMagazineSize = 12
	toolMaxLife         = 100.0
)

var toolTypes = []string{"DRILL", "END_MILL", "FACE_MILL", "REAMER", "TAP", "BORING_BAR"}

type tool struct {
	number      int
	toolType    string
	diameter    float64
	length      float64
	currentLife float64
	maxLife     float64
	inUse       bool
}

// magazine - инструментальный магазин фиксированного размера.
// active - номер инструмента в шпинделе (1..N), 0 - инструмент не выбран.
type magazine struct {
	tools  []tool
	active int
}

func newMagazine(size int, src Source) *magazine {
	m := &magazine{tools: make([]tool, size)}
	for i := range m.tools {
		m.tools[i] = tool{
			number:      i + 1,
			toolType:    toolTypes[randInt(src, 0, len(toolTypes)-1)],
			diameter:    round2(uniform(src, 2, 22)),
			length:      round2(uniform(src, 50, 150)),
			currentLife: toolMaxLife - src.Float64()*80,
			maxLife:     toolMaxLife,
		}
	}
	return m
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (m *magazine) clone() *magazine {
	if m == nil {
		return nil
	}
	c := &magazine{tools: make([]tool, len(m.tools)), active: m.active}
	copy(c.tools, m.tools)
	return c
}

func (m *magazine) size() int {
	return len(m.tools)
}

func (m *magazine) activeTool() *tool {
	if m == nil || m.active < 1 || m.active > len(m.tools) {
		return nil
	}
	return &m.tools[m.active-1]
}

// load ставит инструмент n в шпиндель. В работе может быть только он.
func (m *magazine) load(n int) {
	if m == nil {
		return
	}
	m.release()
	if n < 1 || n > len(m.tools) {
		return
	}
	m.active = n
	m.tools[n-1].inUse = true
}

// release снимает флаг работы со всех инструментов, номер активного сохраняется.
func (m *magazine) release() {
	if m == nil {
		return
	}
	for i := range m.tools {
		m.tools[i].inUse = false
	}
}

// wear уменьшает ресурс активного инструмента, не опуская его ниже нуля.
func (m *magazine) wear(amount float64) {
	t := m.activeTool()
	if t == nil || !t.inUse {
		return
	}
	t.currentLife = math.Max(0, t.currentLife-amount)
}

func (m *magazine) replace(n int) error {
	if m == nil || n < 1 || n > len(m.tools) {
		return fmt.Errorf("%w: T%d", errors.ErrToolNotFound, n)
	}
	t := &m.tools[n-1]
	if t.inUse {
		return fmt.Errorf("%w: T%d", errors.ErrToolInUse, n)
	}
	t.currentLife = t.maxLife
	return nil
}

func (m *magazine) snapshot() []models.ToolSnapshot {
	if m == nil {
		return nil
	}
	out := make([]models.ToolSnapshot, len(m.tools))
	for i, t := range m.tools {
		out[i] = models.ToolSnapshot{
			Number:      t.number,
			Type:        t.toolType,
			Diameter:    t.diameter,
			Length:      t.length,
			Description: fmt.Sprintf("Tool %d", t.number),
			CurrentLife: t.currentLife,
			MaxLife:     t.maxLife,
			InUse:       t.inUse,
		}
	}
	return out
}
