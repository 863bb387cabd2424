package searcher

import "othello/meta"

// Hyperparameters for minimax

const DefaultDepth = meta.SEARCH_DEPTH

const Alpha = meta.ALPHA // Initial lower bound
const Beta = meta.BETA   // Initial upper bound

// One draw in ShuffleOdds shuffles the moves instead of ordering them
const ShuffleOdds = meta.SHUFFLE_ODDS

// Only the first KeepNumerator/KeepDenominator of the ordered moves are searched
const KeepNumerator = 2
const KeepDenominator = 3
