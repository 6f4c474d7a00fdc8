// Package book implements the opening-book external collaborator: a
// read-only lookup from position to a suggested move. The engine core
// treats it as a black box (Prober); this package ships one concrete
// loader for the Polyglot binary book format.
package book

import (
	"encoding/binary"
	"io"
	"math/rand"
	"os"
	"sort"

	"affinitychess/internal/board"
)

// Prober is the book's narrow external-collaborator interface: look up
// a move for a position, or report none.
type Prober interface {
	Probe(pos *board.Position) (board.Move, bool)
}

// BookEntry represents a single book entry.
type BookEntry struct {
	Move   board.Move
	Weight uint16
}

// Book is an in-memory opening book keyed by the Polyglot hash
// (board.Position.PolyglotHash), not the engine's own incremental
// Zobrist hash (board.Position.Hash): the Polyglot file format's
// position keys follow that convention, so lookups must too.
type Book struct {
	entries map[uint64][]BookEntry
}

// New creates an empty book.
func New() *Book {
	return &Book{entries: make(map[uint64][]BookEntry)}
}

// LoadPolyglot loads a Polyglot format opening book from a file.
func LoadPolyglot(filename string) (*Book, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadPolyglotReader(file)
}

// LoadPolyglotReader reads a Polyglot-format book. Each entry is stored
// directly under its recorded key (board.Position.PolyglotHash follows
// the same convention), so no game-tree replay is needed to resolve it
// against a reachable position: Probe computes the same hash from the
// live position it is given and looks it up directly.
//
// Polyglot entry layout (16 bytes, big-endian): 8-byte position key,
// 2-byte move, 2-byte weight, 4 bytes of learn data (ignored).
func LoadPolyglotReader(r io.Reader) (*Book, error) {
	b := New()

	var entry [16]byte
	for {
		_, err := io.ReadFull(r, entry[:])
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		key := binary.BigEndian.Uint64(entry[0:8])
		moveData := binary.BigEndian.Uint16(entry[8:10])
		weight := binary.BigEndian.Uint16(entry[10:12])

		m := decodePolyglotMove(moveData)
		if m == board.NoMove {
			continue
		}
		b.entries[key] = append(b.entries[key], BookEntry{Move: m, Weight: weight})
	}

	return b, nil
}

// decodePolyglotMove converts a Polyglot move encoding to a Move.
// Polyglot move format (bits):
// 0-5: to square, 6-11: from square, 12-14: promotion piece
// (0=none, 1=knight, 2=bishop, 3=rook, 4=queen).
func decodePolyglotMove(data uint16) board.Move {
	toFile := data & 7
	toRank := (data >> 3) & 7
	fromFile := (data >> 6) & 7
	fromRank := (data >> 9) & 7
	promo := (data >> 12) & 7

	from := board.NewSquare(int(fromFile), int(fromRank))
	to := board.NewSquare(int(toFile), int(toRank))

	// Polyglot encodes castling as king-captures-own-rook.
	switch {
	case from == board.E1 && to == board.H1:
		to = board.G1
	case from == board.E1 && to == board.A1:
		to = board.C1
	case from == board.E8 && to == board.H8:
		to = board.G8
	case from == board.E8 && to == board.A8:
		to = board.C8
	}

	if promo > 0 {
		promoKinds := [5]board.MoveKind{0, board.PromoteKnight, board.PromoteBishop, board.PromoteRook, board.PromoteQueen}
		return board.NewMove(from, to, promoKinds[promo])
	}

	return board.NewMove(from, to, board.Quiet)
}

// Probe looks up a position in the book and returns a move using
// weighted random selection among its recorded continuations.
func (b *Book) Probe(pos *board.Position) (board.Move, bool) {
	if b == nil {
		return board.NoMove, false
	}

	entries, ok := b.entries[pos.PolyglotHash()]
	if !ok || len(entries) == 0 {
		return board.NoMove, false
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Weight > entries[j].Weight
	})

	totalWeight := uint32(0)
	for _, e := range entries {
		totalWeight += uint32(e.Weight)
	}

	var pick board.Move
	if totalWeight == 0 {
		pick = entries[0].Move
	} else {
		r := rand.Uint32() % totalWeight
		cumulative := uint32(0)
		pick = entries[0].Move
		for _, e := range entries {
			cumulative += uint32(e.Weight)
			if r < cumulative {
				pick = e.Move
				break
			}
		}
	}

	legal := verifyAndConvert(pos, pick)
	if legal == board.NoMove {
		return board.NoMove, false
	}
	return legal, true
}

// ProbeAll returns all book moves for the position, sorted by weight.
func (b *Book) ProbeAll(pos *board.Position) []BookEntry {
	if b == nil {
		return nil
	}
	entries, ok := b.entries[pos.PolyglotHash()]
	if !ok {
		return nil
	}
	result := make([]BookEntry, len(entries))
	copy(result, entries)
	sort.Slice(result, func(i, j int) bool {
		return result[i].Weight > result[j].Weight
	})
	return result
}

// verifyAndConvert finds the matching legal move (to recover the
// correct Kind, including castling/en-passant/promotion flags) or
// returns NoMove if the encoded move is not legal in pos.
func verifyAndConvert(pos *board.Position, move board.Move) board.Move {
	legalMoves := pos.GenerateLegalMoves()
	from, to := move.From(), move.To()

	for i := 0; i < legalMoves.Len(); i++ {
		lm := legalMoves.Get(i)
		if lm.From() != from || lm.To() != to {
			continue
		}
		if move.IsPromotion() != lm.IsPromotion() {
			continue
		}
		if move.IsPromotion() && move.PromotionType() != lm.PromotionType() {
			continue
		}
		return lm
	}
	return board.NoMove
}

// Size returns the number of unique positions in the book.
func (b *Book) Size() int {
	if b == nil {
		return 0
	}
	return len(b.entries)
}
