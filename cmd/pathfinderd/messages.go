package main

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/animation"
	"github.com/katalvlaran/gridpath/grid"
)

type op string

const (
	opGrid   op = "grid"
	opToggle op = "toggle"
	opRun    op = "run"
	opReset  op = "reset"
	opResize op = "resize"
)

// command is one client request.
type command struct {
	Op     op  `json:"op"`
	Row    int `json:"row,omitempty"`
	Col    int `json:"col,omitempty"`
	Height int `json:"height,omitempty"`
	Width  int `json:"width,omitempty"`
}

type gridMessage struct {
	Type   string       `json:"type"`
	Height int          `json:"height"`
	Width  int          `json:"width"`
	Start  grid.Coord   `json:"start"`
	Finish grid.Coord   `json:"finish"`
	Walls  []grid.Coord `json:"walls"`
}

func newGridMessage(g *grid.Grid) gridMessage {
	walls := g.Walls()
	if walls == nil {
		walls = []grid.Coord{}
	}
	return gridMessage{
		Type:   "grid",
		Height: g.Height(),
		Width:  g.Width(),
		Start:  g.Start(),
		Finish: g.Finish(),
		Walls:  walls,
	}
}

type eventMessage struct {
	Type string `json:"type"`
	animation.Event
}

type doneMessage struct {
	Type      string    `json:"type"`
	Run       uuid.UUID `json:"run"`
	Reachable bool      `json:"reachable"`
	Visited   int       `json:"visited"`
	Length    int       `json:"length"` // path edges; 0 when unreachable
}

type errorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}
