// internal/event/types.go
package event

import "go-aim-trainer/internal/types"

const (
	TargetSpawned EventType = "TargetSpawned" // Мишень появилась
	TargetHit     EventType = "TargetHit"     // Попадание по мишени
	TargetMissed  EventType = "TargetMissed"  // Мишень сжалась до нуля
	SessionEnded  EventType = "SessionEnded"  // Жизни закончились
)

// TargetPayload — данные для событий мишени (Data у TargetSpawned,
// TargetHit, TargetMissed).
type TargetPayload struct {
	ID   types.EntityID
	X, Y float64
}

// SessionSummary — данные SessionEnded: итог сессии на момент конца игры.
type SessionSummary struct {
	Elapsed  float64
	Hits     int
	Clicks   int
	Misses   int
	Accuracy float64
}
