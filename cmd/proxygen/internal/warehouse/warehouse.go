// Package warehouse holds a decoratable interface whose proxies are generated by proxygen. The
// generated file is checked against the generator output by the proxygen tests.
package warehouse

//go:generate go run github.com/a-peyrard/reflective/cmd/proxygen .

import (
	"io"
	"time"
)

type (
	// Stock keeps the quantities of a warehouse.
	// @decoratable
	Stock interface {
		Put(key string, quantities ...int) (int8, error)
		Copy(io.Writer, time.Duration) error
		Names(p string, out []string, invoker int) map[string]io.Reader
	}

	// Depot ships goods out of its stock.
	Depot struct {
		stock Stock
	}
)

func NewDepot(stock Stock) *Depot {
	return &Depot{stock: stock}
}

// Receive stores quantities of key and returns the number of stored lots.
func (d *Depot) Receive(key string, quantities ...int) (int8, error) {
	return d.stock.Put(key, quantities...)
}
