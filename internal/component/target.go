// component/target.go
package component

// Target — мишень. Центр фиксируется при спавне, радиус растёт до MaxRadius,
// затем убывает до нуля. Сжавшаяся до нуля мишень считается промахом.
type Target struct {
	X, Y       float64
	Radius     float64
	MaxRadius  float64
	GrowthRate float64 // пикселей в секунду
	Growing    bool
}

// NewTarget создаёт мишень нулевого радиуса в фазе роста.
func NewTarget(x, y, maxRadius, growthRate float64) *Target {
	return &Target{
		X:          x,
		Y:          y,
		Radius:     0,
		MaxRadius:  maxRadius,
		GrowthRate: growthRate,
		Growing:    true,
	}
}

// Update продвигает радиус на один тик. Growing сбрасывается ровно один раз,
// на том тике, где следующий шаг вышел бы за MaxRadius, и обратно не
// взводится. Радиус не выходит из диапазона [0, MaxRadius].
func (t *Target) Update(deltaTime float64) {
	step := t.GrowthRate * deltaTime
	if t.Growing && t.Radius+step >= t.MaxRadius {
		t.Growing = false
	}
	if t.Growing {
		t.Radius += step
	} else {
		t.Radius -= step
		if t.Radius < 0 {
			t.Radius = 0
		}
	}
}

// Collide сообщает, накрывает ли мишень точку (x, y): евклидово расстояние
// до центра не больше текущего радиуса.
func (t *Target) Collide(x, y float64) bool {
	dx := x - t.X
	dy := y - t.Y
	return dx*dx+dy*dy <= t.Radius*t.Radius
}

// Expired — мишень закончила сжиматься.
func (t *Target) Expired() bool {
	return !t.Growing && t.Radius <= 0
}
