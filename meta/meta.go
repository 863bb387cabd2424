// meta/meta.go
package meta

// SEARCH_DEPTH defines the fixed depth of the computer player's search.
const SEARCH_DEPTH = 10

// ALPHA and BETA define the initial alpha-beta window.
const ALPHA = -1000
const BETA = 1000

// SHUFFLE_ODDS defines the move ordering draw range, a draw of 0 out of
// SHUFFLE_ODDS shuffles the moves instead of sorting them.
const SHUFFLE_ODDS = 101

// NO_SHUFFLE as a configured shuffle odds disables the random ordering.
// A configured 0 keeps SHUFFLE_ODDS.
const NO_SHUFFLE = -1

// MAX_TURNS guards the game loop, a full game needs at most 60 moves.
const MAX_TURNS = 120
