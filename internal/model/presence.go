package model

// Direction is the snake's current heading
type Direction string

const (
	DirectionUp    Direction = "UP"
	DirectionDown  Direction = "DOWN"
	DirectionLeft  Direction = "LEFT"
	DirectionRight Direction = "RIGHT"
)

// GameStatus is the lifecycle state of an in-progress session
type GameStatus string

const (
	StatusIdle     GameStatus = "idle"
	StatusPlaying  GameStatus = "playing"
	StatusPaused   GameStatus = "paused"
	StatusGameOver GameStatus = "game-over"
)

// Position is a grid cell coordinate
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ActivePlayer is a volatile snapshot of a game session in progress.
// It is produced by the external session driver and is never persisted;
// this backend only reads it. JSON tags define the wire format the driver
// publishes, so they must stay in sync with the game loop.
type ActivePlayer struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Score     int        `json:"score"`
	Mode      GameMode   `json:"mode"`
	Snake     []Position `json:"snake"` // occupied cells, head first
	Food      Position   `json:"food"`
	Direction Direction  `json:"direction"`
	Status    GameStatus `json:"status"`
}
