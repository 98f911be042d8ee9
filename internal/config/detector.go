package config

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/shabbyrobe/gibberish"
)

// DetectorOptions loads the configured word lists and pattern tables.
func (c *Config) DetectorOptions(log *zap.Logger) ([]gibberish.Option, error) {
	var opts []gibberish.Option

	if c.Words.Path != "" {
		ws, err := loadWordList(c.Words, gibberish.EnglishWords(), true)
		if err != nil {
			return nil, err
		}
		log.Info("loaded word list", zap.String("path", c.Words.Path), zap.Int("words", ws.Len()))
		opts = append(opts, gibberish.WithDictionary(ws))
	}
	if c.Passwords.Path != "" {
		ws, err := loadWordList(c.Passwords, gibberish.CommonPasswords(), false)
		if err != nil {
			return nil, err
		}
		log.Info("loaded password list", zap.String("path", c.Passwords.Path), zap.Int("passwords", ws.Len()))
		opts = append(opts, gibberish.WithPasswords(ws))
	}

	for _, tbl := range []struct {
		path  string
		order int
		with  func(gibberish.PatternSet) gibberish.Option
	}{
		{c.Tables.Bigrams, 2, gibberish.WithBigrams},
		{c.Tables.Trigrams, 3, gibberish.WithTrigrams},
		{c.Tables.Quadgrams, 4, gibberish.WithQuadgrams},
	} {
		if tbl.path == "" {
			continue
		}
		ps, err := LoadTable(tbl.path)
		if err != nil {
			return nil, err
		}
		if ps.Order() != tbl.order {
			return nil, fmt.Errorf("config: table %s has order %d, want %d", tbl.path, ps.Order(), tbl.order)
		}
		log.Info("loaded pattern table", zap.String("path", tbl.path), zap.Int("order", ps.Order()), zap.Int("grams", ps.Len()))
		opts = append(opts, tbl.with(ps))
	}

	opts = append(opts, gibberish.WithLogger(log.Named("detector")))
	return opts, nil
}

// NewDetector is DetectorOptions followed by gibberish.New.
func (c *Config) NewDetector(log *zap.Logger) (*gibberish.Detector, error) {
	opts, err := c.DetectorOptions(log)
	if err != nil {
		return nil, err
	}
	return gibberish.New(opts...), nil
}

func LoadTable(path string) (gibberish.PatternSet, error) {
	var ps gibberish.PatternSet
	bts, err := os.ReadFile(path)
	if err != nil {
		return ps, fmt.Errorf("config: read table: %w", err)
	}
	if err := ps.UnmarshalBinary(bts); err != nil {
		return ps, fmt.Errorf("config: %s: %w", path, err)
	}
	return ps, nil
}

func loadWordList(wl WordListConfig, base gibberish.WordSet, fold bool) (gibberish.WordSet, error) {
	f, err := os.Open(wl.Path)
	if err != nil {
		return nil, fmt.Errorf("config: open word list: %w", err)
	}
	defer f.Close()

	ws, err := gibberish.LoadWordSet(f, fold)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", wl.Path, err)
	}
	if wl.Replace {
		return ws, nil
	}
	out := gibberish.NewWordSet()
	out.Merge(base)
	out.Merge(ws)
	return out, nil
}
