// SPDX-License-Identifier: MIT
// Dev: KryperAI

package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/log"

	"aewire/config"
	"aewire/p2p"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	setupLogging("info")

	var err error
	switch os.Args[1] {
	case "decode":
		err = decode(os.Args[2:])
	case "ping":
		err = ping(os.Args[2:])
	case "config":
		err = showConfig(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Error("Command failed", "cmd", os.Args[1], "err", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("aewire usage:")
	fmt.Println("  aewire decode [-config FILE] [-file FRAMES] [HEX ...]")
	fmt.Println("  aewire ping   [-config FILE]")
	fmt.Println("  aewire config [-config FILE]")
}

// ---------------- DECODE ----------------

func decode(args []string) error {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	cfgPath := fs.String("config", "", "config file (toml)")
	file := fs.String("file", "", "file with one hex frame per line, - for stdin")
	fs.Parse(args)

	if _, err := loadConfig(*cfgPath); err != nil {
		return err
	}

	frames := fs.Args()
	if *file != "" {
		lines, err := readFrames(*file)
		if err != nil {
			return err
		}
		frames = append(frames, lines...)
	}
	if len(frames) == 0 {
		return fmt.Errorf("no frames given")
	}

	d := p2p.NewDispatcher(log.New("module", "p2p"))
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	failed := 0
	for i, h := range frames {
		frame, err := parseHex(h)
		if err != nil {
			log.Warn("Skipping bad hex frame", "frame", i, "err", err)
			failed++
			continue
		}
		msg, err := d.HandleFrame(frame)
		if err != nil {
			log.Warn("Failed to decode frame", "frame", i, "err", err)
			failed++
			continue
		}
		if msg == nil {
			log.Info("Frame carried no decodable message", "frame", i)
			continue
		}
		out := struct {
			Type    string      `json:"type"`
			Message p2p.Message `json:"message"`
		}{msg.Type().String(), msg}
		if err := enc.Encode(out); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d frames failed", failed, len(frames))
	}
	return nil
}

// ---------------- PING ----------------

func ping(args []string) error {
	fs := flag.NewFlagSet("ping", flag.ExitOnError)
	cfgPath := fs.String("config", "", "config file (toml)")
	fs.Parse(args)

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}
	genesis, err := cfg.Ping.GenesisHashBytes()
	if err != nil {
		return err
	}
	top, err := cfg.Ping.TopHashBytes()
	if err != nil {
		return err
	}

	p := p2p.NewPing(cfg.Ping.Port, cfg.Ping.Share, genesis, cfg.Ping.Difficulty, top, cfg.Ping.SyncAllowed)
	frame, err := p2p.EncodePing(p)
	if err != nil {
		return err
	}
	log.Debug("Encoded ping", "size", len(frame))
	fmt.Println(hexutil.Encode(frame))
	return nil
}

// ---------------- CONFIG ----------------

func showConfig(args []string) error {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	cfgPath := fs.String("config", "", "config file (toml)")
	fs.Parse(args)

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}
	cfg.Print()
	return nil
}

// ---------------- HELPERS ----------------

func loadConfig(path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	setupLogging(cfg.LogLevel)
	return cfg, nil
}

func setupLogging(level string) {
	lvl := log.LevelInfo
	switch strings.ToLower(level) {
	case "trace":
		lvl = log.LevelTrace
	case "debug":
		lvl = log.LevelDebug
	case "warn":
		lvl = log.LevelWarn
	case "error":
		lvl = log.LevelError
	case "crit":
		lvl = log.LevelCrit
	}
	log.SetDefault(log.NewLogger(log.NewTerminalHandlerWithLevel(os.Stderr, lvl, false)))
}

func readFrames(path string) ([]string, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var frames []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		frames = append(frames, line)
	}
	return frames, sc.Err()
}

func parseHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	return hexutil.Decode(s)
}
