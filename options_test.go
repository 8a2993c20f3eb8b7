// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring_test

import (
	"testing"

	"github.com/ckring-go/ckring"
)

// TestBuildSPSC confirms the builder produces a working SPSC ring when
// configured with SingleConsumer.
func TestBuildSPSC(t *testing.T) {
	q := ring.BuildSPSC[token](ring.New(4).SingleConsumer())
	if err := q.Enqueue(tokA); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	got, err := q.Dequeue()
	if err != nil || got != tokA {
		t.Fatalf("Dequeue: got (%v, %v), want (%v, nil)", got, err, tokA)
	}
}

// TestBuildSPMC confirms the builder produces a working SPMC ring when
// SingleConsumer is omitted.
func TestBuildSPMC(t *testing.T) {
	q := ring.BuildSPMC[token](ring.New(4))
	if err := q.Enqueue(tokA); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	got, err := q.Dequeue()
	if err != nil || got != tokA {
		t.Fatalf("Dequeue: got (%v, %v), want (%v, nil)", got, err, tokA)
	}
}

// TestBuildSPSCPanicsWithoutSingleConsumer covers the builder's
// discipline-selection guard.
func TestBuildSPSCPanicsWithoutSingleConsumer(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("BuildSPSC without SingleConsumer(): expected panic, got none")
		}
	}()
	ring.BuildSPSC[token](ring.New(4))
}

// TestBuildSPMCPanicsWithSingleConsumer covers the builder's
// discipline-selection guard in the opposite direction.
func TestBuildSPMCPanicsWithSingleConsumer(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("BuildSPMC with SingleConsumer(): expected panic, got none")
		}
	}()
	ring.BuildSPMC[token](ring.New(4).SingleConsumer())
}

// TestNewPanicsOnTinyCapacity covers the builder's own capacity guard,
// independent of NewSPSC/NewSPMC's.
func TestNewPanicsOnTinyCapacity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("New(1): expected panic, got none")
		}
	}()
	ring.New(1)
}
