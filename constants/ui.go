package constants

import "github.com/gdamore/tcell/v2"

// Entity Glyphs
const (
	// PlayerGlyph is the full-health ship; it shrinks as lives are lost
	PlayerGlyph = "==="

	// EnemyGlyph is the swarm member model, three bytes wide for collision purposes
	EnemyGlyph = "֎ "

	// BulletGlyph is shared by player and enemy bullets
	BulletGlyph = "|"

	// WallGlyph is used for top, bottom and block walls
	WallGlyph = "="

	// SideWallGlyph is used for the left and right borders
	SideWallGlyph = "ǁ"

	// BlankCell erases a single cell
	BlankCell = " "
)

// PlayerGlyphs maps remaining lives to the ship model
var PlayerGlyphs = map[int]string{
	3: "===",
	2: " ==",
	1: " = ",
	0: "   ",
}

// Entity Styles
var (
	PlayerStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	EnemyStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	BulletStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	WallStyle   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	TextStyle   = tcell.StyleDefault
)

// Messages
const (
	// GameOverMessage is centered on screen once the player runs out of lives
	GameOverMessage = "Game Over! Want to try again? Y/N"

	// VictoryMessage is centered on screen once the last enemy is destroyed
	VictoryMessage = "You Win! Want to play again? Y/N"

	// StatusFormat is the layout of the status line below the arena
	StatusFormat = "Enemies left: %d, Total mem: %d, FPS: %d, lives: %d"
)

// WelcomeLines is the help screen shown before the first game starts
var WelcomeLines = []string{
	"======================",
	"Welcome to Gaminal",
	"| q | quit",
	"| s | start",
	"| r | restart",
	"| p | pause",
	"| z, x | left and right",
	"======================",
}
