package main

import (
	"math/rand"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"frenchdeck/card"
	"frenchdeck/deck"
	"frenchdeck/internal/config"
	"frenchdeck/seq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[Deck] Failed to load config: %v", err)
	}
	if err := setupLogging(cfg); err != nil {
		log.Fatalf("[Deck] Failed to set up logging: %v", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	if err := run(deck.New(), rng, cfg.List); err != nil {
		log.Fatalf("[Deck] %v", err)
	}
}

func setupLogging(cfg *config.Config) error {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.SetOutput(os.Stdout)
	if cfg.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return nil
}

func run(d *deck.Deck, rng *rand.Rand, list string) error {
	log.WithField("size", d.Len()).Info("deck built")

	first, err := d.Get(0)
	if err != nil {
		return err
	}
	last, err := d.Get(-1)
	if err != nil {
		return err
	}
	log.WithField("card", first).Info("first card")
	log.WithField("card", last).Info("last card")

	picked, err := d.Choice(rng)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"card": picked, "index": d.Index(picked)}).Info("random card")

	aces := d.Slice(12, seq.Open, 13)
	log.WithField("cards", aces.Strings()).Info("every 13th card from position 12")

	switch list {
	case config.ListForward:
		i := 0
		for c := range d.All() {
			logCard(i, c)
			i++
		}
	case config.ListReverse:
		for i, c := range d.Backward() {
			logCard(i, c)
		}
	}
	return nil
}

func logCard(i int, c card.Card) {
	log.WithFields(log.Fields{"pos": i, "rank": c.Rank.String(), "suit": c.Suit.String()}).Debug(c.Short())
}
