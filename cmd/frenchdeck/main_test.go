package main

import (
	"bytes"
	"math/rand"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frenchdeck/deck"
	"frenchdeck/internal/config"
)

func TestRun_LogsSizeAndEnds(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	log.SetLevel(log.DebugLevel)
	t.Cleanup(func() { log.SetLevel(log.InfoLevel) })

	err := run(deck.New(), rand.New(rand.NewSource(1)), config.ListReverse)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "size=52")
	assert.Contains(t, out, "Card(rank='2', suit='spades')")
	assert.Contains(t, out, "Card(rank='A', suit='hearts')")
	assert.Contains(t, out, "random card")
	assert.Contains(t, out, "pos=51")
	assert.Contains(t, out, "pos=0")
}
