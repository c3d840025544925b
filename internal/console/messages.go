package console

const (
	LanguageSpanish = "es"
	LanguageEnglish = "en"
)

// Messages - every line the game prints besides the board.
type Messages struct {
	Welcome      string
	Prompt       string
	InvalidRange string
	CellOccupied string
	Victory      string
	Defeat       string
	Draw         string
}

var catalog = map[string]Messages{
	LanguageSpanish: {
		Welcome:      "Bienvenido a 3 en raya:",
		Prompt:       "Introduce una casilla para jugar",
		InvalidRange: "Número incorrecto, inténtalo de nuevo",
		CellOccupied: "La casilla ya está ocupada, inténtalo de nuevo",
		Victory:      "Has ganado!",
		Defeat:       "Has perdido!",
		Draw:         "Empate!",
	},
	LanguageEnglish: {
		Welcome:      "Welcome to tic-tac-toe:",
		Prompt:       "Enter a cell to play",
		InvalidRange: "Wrong number, try again",
		CellOccupied: "That cell is already taken, try again",
		Victory:      "You won!",
		Defeat:       "You lost!",
		Draw:         "Draw!",
	},
}

// MessagesFor - unknown languages fall back to Spanish; config validation only lets "es" and "en" through.
func MessagesFor(language string) Messages {
	if messages, ok := catalog[language]; ok {
		return messages
	}

	return catalog[LanguageSpanish]
}
