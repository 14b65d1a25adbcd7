package simulator

import (
	"math/rand"
	"time"
)

// Source - источник случайных выборок в диапазоне [0,1).
// *rand.Rand удовлетворяет этому интерфейсу.
type Source interface {
	Float64() float64
}

// Randomness разделяет случайность станка на три независимых потока,
// чтобы тесты могли зафиксировать каждый из них отдельно.
type Randomness struct {
	Cycle  Source // вероятность старта цикла
	Faults Source // вероятность аварий и их автосброса
	Noise  Source // шум датчиков и выбор целевых значений
}

// NewRandomness возвращает Randomness, где все потоки питаются одним генератором.
// seed == 0 означает засев от текущего времени.
func NewRandomness(seed int64) Randomness {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))
	return Randomness{Cycle: r, Faults: r, Noise: r}
}

// withDefaults заполняет незаданные потоки генератором с указанным seed.
func (r Randomness) withDefaults(seed int64) Randomness {
	if r.Cycle != nil && r.Faults != nil && r.Noise != nil {
		return r
	}
	def := NewRandomness(seed)
	if r.Cycle == nil {
		r.Cycle = def.Cycle
	}
	if r.Faults == nil {
		r.Faults = def.Faults
	}
	if r.Noise == nil {
		r.Noise = def.Noise
	}
	return r
}

// FixedSource всегда возвращает одно и то же значение.
// FixedSource(0) открывает любой вероятностный шлюз, FixedSource(0.999) - закрывает.
type FixedSource float64

func (f FixedSource) Float64() float64 { return float64(f) }

// chance - вероятностный шлюз: срабатывает, если выборка меньше p.
func chance(src Source, p float64) bool {
	return src.Float64() < p
}

func uniform(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

// randInt возвращает целое в [lo, hi] включительно.
func randInt(src Source, lo, hi int) int {
	n := lo + int(src.Float64()*float64(hi-lo+1))
	if n > hi {
		n = hi
	}
	return n
}
