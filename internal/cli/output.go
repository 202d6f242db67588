package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": err.Error(),
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case User:
		o.printUser(v)
	case AuthResult:
		o.printAuthResult(v)
	case LeaderboardEntry:
		o.printEntry(v)
	case []LeaderboardEntry:
		o.printLeaderboard(v)
	case ActivePlayer:
		o.printActivePlayer(v)
	case []ActivePlayer:
		o.printActivePlayers(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// User response type (matches API)
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	HighScore int       `json:"highScore"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResult combines a user with the issued token
type AuthResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// LeaderboardEntry response type
type LeaderboardEntry struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	Score    int       `json:"score"`
	Mode     string    `json:"mode"`
	Date     time.Time `json:"date"`
	Rank     int       `json:"rank"`
}

// Position response type
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ActivePlayer response type
type ActivePlayer struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Score     int        `json:"score"`
	Mode      string     `json:"mode"`
	Snake     []Position `json:"snake"`
	Food      Position   `json:"food"`
	Direction string     `json:"direction"`
	Status    string     `json:"status"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printUser(u User) {
	fmt.Printf("User: %s (%s)\n", u.Username, u.ID)
	fmt.Printf("Email: %s\n", u.Email)
	fmt.Printf("High Score: %d\n", u.HighScore)
	fmt.Printf("Member Since: %s\n", u.CreatedAt.Format("2006-01-02"))
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printUser(a.User)
	if a.Token != "" {
		fmt.Printf("Token: %s\n", a.Token)
	}
}

func (o *Output) printEntry(e LeaderboardEntry) {
	fmt.Printf("#%d  %s  %d points (%s)\n", e.Rank, e.Username, e.Score, e.Mode)
	fmt.Printf("Submitted: %s\n", e.Date.Format(time.RFC3339))
}

func (o *Output) printLeaderboard(entries []LeaderboardEntry) {
	if len(entries) == 0 {
		fmt.Println("No scores yet")
		return
	}

	fmt.Printf("%-5s %-20s %-8s %-12s %s\n", "Rank", "Player", "Score", "Mode", "Date")
	for _, e := range entries {
		fmt.Printf("%-5d %-20s %-8d %-12s %s\n",
			e.Rank, e.Username, e.Score, e.Mode, e.Date.Format("2006-01-02 15:04"))
	}
}

func (o *Output) printActivePlayer(p ActivePlayer) {
	fmt.Printf("Player: %s (%s)\n", p.Username, p.ID)
	fmt.Printf("Score: %d\n", p.Score)
	fmt.Printf("Mode: %s\n", p.Mode)
	fmt.Printf("Status: %s\n", p.Status)
	fmt.Printf("Heading: %s\n", p.Direction)
	fmt.Printf("Length: %d\n", len(p.Snake))
	if len(p.Snake) > 0 {
		fmt.Printf("Head: (%d, %d)\n", p.Snake[0].X, p.Snake[0].Y)
	}
	fmt.Printf("Food: (%d, %d)\n", p.Food.X, p.Food.Y)
}

func (o *Output) printActivePlayers(players []ActivePlayer) {
	if len(players) == 0 {
		fmt.Println("No active players")
		return
	}

	fmt.Printf("%-12s %-20s %-8s %-12s %-10s %s\n",
		"ID", "Player", "Score", "Mode", "Status", "Length")
	for _, p := range players {
		fmt.Printf("%-12s %-20s %-8d %-12s %-10s %d\n",
			p.ID, p.Username, p.Score, p.Mode, p.Status, len(p.Snake))
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
