// Command gnssd is the composition root: it owns the serial port, wires it
// to the protocol core as a gnss.Sender, and drives gnss.Receiver.Receive
// from a blocking read loop until interrupted.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aklein24/gnss-driver/internal/gnss"
	"github.com/aklein24/gnss-driver/internal/logging"
	"github.com/aklein24/gnss-driver/internal/ntrip"
	"github.com/aklein24/gnss-driver/internal/port"
	"github.com/aklein24/gnss-driver/internal/position"
	"github.com/aklein24/gnss-driver/internal/rtcm"
)

// portSender adapts port.GNSSSerialPort to gnss.Sender. Write errors are
// logged and otherwise swallowed: the core has no retry semantics of its
// own for transmit failures, matching the fire-and-forget Sender contract.
type portSender struct {
	p      *port.GNSSSerialPort
	logger logging.Logger
}

func (s *portSender) Send(b []byte) {
	if _, err := s.p.Write(b); err != nil {
		s.logger.Warnf("write failed: %v", err)
	}
}

// afterFuncScheduler implements gnss.Scheduler with the standard library
// timer (time.AfterFunc); the callback runs on the timer's own goroutine.
type afterFuncScheduler struct{}

type afterFuncTimer struct{ t *time.Timer }

func (t *afterFuncTimer) Stop() { t.t.Stop() }

func (afterFuncScheduler) Schedule(d time.Duration, fn func()) gnss.Timer {
	return &afterFuncTimer{t: time.AfterFunc(d, fn)}
}

// crossCheck independently decodes a raw NMEA line with go-nmea and compares
// its position against the core's most recently published fix, warning on
// gross divergence. lastFix is nil until the core's first publish.
func crossCheck(logger logging.Logger, lastFix *gnss.Location, line string) {
	lat, lon, hasPosition, err := position.VerifySentence(line)
	if err != nil || !hasPosition || lastFix == nil {
		return
	}

	coreLat := float64(lastFix.LatitudeE7) / 1e7
	coreLon := float64(lastFix.LongitudeE7) / 1e7
	if d := position.DiscrepancyMeters(lat, lon, coreLat, coreLon); d > 50 {
		logger.Warnf("verify: go-nmea cross-check diverges from core fix by %.1fm", d)
	} else {
		logger.Debugf("verify: go-nmea cross-check within %.1fm of core fix", d)
	}
}

func main() {
	portName := flag.String("port", "", "serial device path (e.g. /dev/ttyUSB0)")
	baud := flag.Int("baud", 38400, "initial baud rate")
	mode := flag.String("mode", "nmea", "protocol mode: nmea or ublox")
	rateHz := flag.Int("rate", 1, "requested fix rate in Hz: 1, 5 or 10")
	outputFile := flag.String("output", "./last_fix.json", "path to persist the most recent fix")
	debug := flag.Bool("debug", false, "enable debug logging")
	verify := flag.Bool("verify", false, "cross-check the decoded fix against an independent go-nmea parse (nmea mode only)")
	ntripAddr := flag.String("ntrip-address", "", "NTRIP caster address for correction-aware fixes (optional)")
	ntripPort := flag.String("ntrip-port", "2101", "NTRIP caster port")
	ntripUser := flag.String("ntrip-user", "", "NTRIP caster username")
	ntripPass := flag.String("ntrip-pass", "", "NTRIP caster password")
	ntripMount := flag.String("ntrip-mount", "", "NTRIP mountpoint")
	flag.Parse()

	if *portName == "" {
		fmt.Println("Error: -port is required")
		flag.Usage()
		os.Exit(1)
	}

	logger := logging.NewStdLogger(*debug)

	var gmode gnss.Mode
	switch *mode {
	case "nmea":
		gmode = gnss.ModeNMEA
	case "ublox":
		gmode = gnss.ModeUBlox
	default:
		fmt.Printf("Error: unknown mode %q (want nmea or ublox)\n", *mode)
		os.Exit(1)
	}

	var rate gnss.Rate
	switch *rateHz {
	case 1:
		rate = gnss.Rate1Hz
	case 5:
		rate = gnss.Rate5Hz
	case 10:
		rate = gnss.Rate10Hz
	default:
		fmt.Printf("Error: unsupported rate %d (want 1, 5 or 10)\n", *rateHz)
		os.Exit(1)
	}

	sp := port.NewGNSSSerialPort()
	if err := sp.Open(*portName, *baud); err != nil {
		fmt.Printf("Error opening %s: %v\n", *portName, err)
		os.Exit(1)
	}
	defer sp.Close()

	if *verify && gmode != gnss.ModeNMEA {
		logger.Warnf("-verify only cross-checks nmea mode; ignoring for mode %q", *mode)
		*verify = false
	}

	receiver := gnss.NewReceiver(logger)

	var lastFix *gnss.Location
	onLocation := func(l gnss.Location) {
		lc := l
		lastFix = &lc
		pos := position.FromLocation(l)
		logger.Infof("fix: %s lat=%.7f lon=%.7f alt=%.1fm sats=%d",
			pos.Description, pos.Latitude, pos.Longitude, pos.Altitude, pos.Satellites)
		if err := pos.SaveToFile(*outputFile); err != nil {
			logger.Warnf("saving fix: %v", err)
		}
	}
	onSatellites := func(sats []gnss.Satellite) {
		logger.Debugf("satellite table: %d in view", len(sats))
	}

	receiver.Init(gmode, rate, *baud, &portSender{p: sp, logger: logger}, afterFuncScheduler{}, onLocation, onSatellites)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *ntripAddr != "" {
		watcher := rtcm.NewWatcher(receiver, 10*time.Second)
		go feedCorrections(ctx, logger, watcher, *ntripAddr, *ntripPort, *ntripUser, *ntripPass, *ntripMount)
	}

	done := make(chan struct{})
	go func() {
		buf := make([]byte, 1024)
		var verifyBuf []byte
		for {
			n, err := sp.Read(buf)
			if err != nil {
				logger.Errorf("read failed: %v", err)
				close(done)
				return
			}
			if n == 0 {
				continue
			}
			chunk := buf[:n]
			receiver.Receive(chunk)

			if *verify {
				verifyBuf = append(verifyBuf, chunk...)
				for {
					idx := bytes.Index(verifyBuf, []byte("\r\n"))
					if idx < 0 {
						break
					}
					line := string(verifyBuf[:idx])
					verifyBuf = verifyBuf[idx+2:]
					crossCheck(logger, lastFix, line)
				}
			}
		}
	}()

	select {
	case <-sigCh:
		logger.Infof("shutting down")
	case <-done:
		logger.Errorf("serial read loop exited")
	}
}

// feedCorrections streams RTCM corrections from an NTRIP caster into watcher,
// which annotates the receiver's published fixes with the CORRECTION bit
// while the stream is live. It retries the connection until ctx is done.
func feedCorrections(ctx context.Context, logger logging.Logger, watcher *rtcm.Watcher, address, casterPort, user, pass, mount string) {
	url := fmt.Sprintf("http://%s:%s", address, casterPort)
	client := ntrip.NewClient(url, user, pass, mount)

	for ctx.Err() == nil {
		stream, err := client.Connect(ctx)
		if err != nil {
			logger.Warnf("ntrip: connect failed: %v", err)
			time.Sleep(5 * time.Second)
			continue
		}

		buf := make([]byte, 1024)
		for {
			n, err := stream.Read(buf)
			if err != nil {
				logger.Warnf("ntrip: stream ended: %v", err)
				break
			}
			if n > 0 {
				watcher.Feed(buf[:n])
			}
		}
		stream.Close()

		select {
		case <-ctx.Done():
			return
		case <-time.After(5 * time.Second):
		}
	}
}
