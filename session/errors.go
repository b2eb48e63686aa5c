package session

import "errors"

// ErrBusy indicates a Run request while another run's animation is in flight.
var ErrBusy = errors.New("session: a run is already in flight")
