// This file is part of Regplay.
//
// Regplay is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Regplay is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Regplay.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/regplay/chip"
	"github.com/jetsetilly/regplay/codec"
	"github.com/jetsetilly/regplay/curated"
	"github.com/jetsetilly/regplay/logger"
	"github.com/jetsetilly/regplay/modalflag"
	"github.com/jetsetilly/regplay/player"
	"github.com/jetsetilly/regplay/prefs"
	"github.com/jetsetilly/regplay/registers"
	"github.com/jetsetilly/regplay/sink"
	"github.com/jetsetilly/regplay/sink/digest"
	"github.com/jetsetilly/regplay/sink/otoaudio"
	"github.com/jetsetilly/regplay/sink/sdlaudio"
	"github.com/jetsetilly/regplay/sink/wavsink"
	"github.com/jetsetilly/regplay/statsview"
	"github.com/jetsetilly/regplay/status"
	"github.com/jetsetilly/regplay/tracks"
	"github.com/jetsetilly/regplay/userinput"
	"github.com/jetsetilly/regplay/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// stop the default interrupt signal handling. used when the mode has a
	// handler of its own. the PLAY mode needs to close the audio sinks
	// before the program ends.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args any
}

// communication between the main() function and the launch() function.
type mainSync struct {
	state chan stateRequest
}

// the time between iterations of the playback loop. a frame can be applied up
// to this much later than it was due but the pacer keeps to the schedule of
// the track
const pollInterval = time.Millisecond

// the time between updates of the status line
const statusInterval = 100 * time.Millisecond

func main() {
	sync := &mainSync{
		state: make(chan stateRequest),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// default ctrl-c handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync)

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Stop(intChan)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate the program should end.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("PLAY", "DUMP", "ENCODE", "INFO", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* %s\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md, sync)

	case "DUMP":
		err = dump(md)

	case "ENCODE":
		err = encode(md)

	case "INFO":
		err = info(md)

	case "VERSION":
		fmt.Fprintln(md.Output, version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// the audio outputs of the PLAY mode
type outputs struct {
	writers []io.Writer
	closers []io.Closer
	digest  *digest.Audio
}

func (o *outputs) add(w io.WriteCloser) {
	o.writers = append(o.writers, w)
	o.closers = append(o.closers, w)
}

func (o *outputs) writer() io.Writer {
	switch len(o.writers) {
	case 0:
		return &sink.Null{}
	case 1:
		return o.writers[0]
	}
	return io.MultiWriter(o.writers...)
}

// close every output in reverse order. the first error is returned
func (o *outputs) close() error {
	var err error
	for i := len(o.closers) - 1; i >= 0; i-- {
		if cerr := o.closers[i].Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	o.closers = o.closers[:0]
	return err
}

func play(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	md.AdditionalHelp("keys: n/space/right skip track, s toggle status line, q quit")

	audioOut := md.AddString("audio", "SDL", "audio output: SDL, OTO, NONE")
	wav := md.AddString("wav", "", "record audio to wav file")
	dig := md.AddBool("digest", false, "print SHA-1 digest of the audio output on exit")
	format := md.AddString("format", "", "format of tracks not decided by filename: RAW, TIMED, RLD")
	prefsArg := md.AddString("prefs", "", "player preferences (eg. \"player.samplerate::48000; player.tickscale::1.015\")")
	trace := md.AddBool("trace", false, "print voice changes as they happen")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.DefaultAddress))
	viz := md.AddString("memviz", "", "write graph of player memory to file on exit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("track or directory of tracks required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	pp, err := newPreferences(*prefsArg, *format)
	if err != nil {
		return err
	}

	sel, err := tracks.NewDirectory(md.GetArg(0), pp.DefaultFormat())
	if err != nil {
		return err
	}

	sampleRate := pp.SampleRate.Get().(int)

	out := &outputs{}
	defer out.close()

	switch strings.ToUpper(*audioOut) {
	case "SDL":
		aud, err := sdlaudio.NewAudio(sampleRate)
		if err != nil {
			return err
		}
		out.add(aud)
	case "OTO":
		aud, err := otoaudio.NewAudio(sampleRate)
		if err != nil {
			return err
		}
		out.add(aud)
	case "NONE":
	default:
		return fmt.Errorf("unknown audio output (%s)", *audioOut)
	}

	if *wav != "" {
		ws, err := wavsink.New(*wav, sampleRate)
		if err != nil {
			return err
		}
		out.add(ws)
	}

	if *dig {
		out.digest = digest.NewAudio()
		out.add(out.digest)
	}

	var chp player.Chip
	if *trace {
		chp = chip.NewTracker(chip.ClockPAL, os.Stdout)
	} else {
		chp = &chip.Silent{}
	}

	pl, err := player.NewPlayer(pp, sel, chp, out.writer())
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(md.Output, "")
	}

	// keyboard input is optional. playback continues without it if the
	// terminal cannot be opened
	var kb *userinput.Keyboard
	if userinput.IsTerminal(os.Stdin) {
		tm, err := userinput.OpenTerminal()
		if err != nil {
			logger.Log(logger.Allow, "regplay", err.Error())
		} else {
			defer tm.Close()
			kb = userinput.NewKeyboard(tm)
		}
	}

	st := status.NewStatus(os.Stdout)
	if *log || *trace || !userinput.IsTerminal(os.Stdout) {
		st.Toggle()
	}

	// the PLAY mode has its own interrupt handler so that the outputs are
	// closed properly
	sync.state <- stateRequest{req: reqNoIntSig}
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	err = run(pl, kb, st, intChan)
	st.End()

	if serr := pl.Stop(); serr != nil && err == nil {
		err = serr
	}
	if cerr := out.close(); cerr != nil && err == nil {
		err = cerr
	}

	if out.digest != nil {
		fmt.Fprintf(md.Output, "audio digest: %s\n", out.digest.Hash())
	}

	s := pl.Statistics()
	logger.Logf(logger.Allow, "regplay", "%d tracks, %d frames, %d overruns, %d corrupt, %d short writes",
		s.Tracks, s.Frames, s.Overruns, s.Corrupt, s.ShortWrites)

	if *viz != "" {
		if verr := writeMemviz(*viz, pl); verr != nil && err == nil {
			err = verr
		}
	}

	return err
}

// run the playback loop until the user quits or the player halts with an
// error
func run(pl *player.Player, kb *userinput.Keyboard, st *status.Status, intChan chan os.Signal) error {
	start := time.Now()
	var lastStatus time.Duration

	pl.Select()

	for {
		select {
		case <-intChan:
			return nil
		default:
		}

		if kb != nil {
			ev, ok := kb.Poll()
			if !ok {
				kb = nil
			}
			switch ev {
			case userinput.EventQuit:
				return nil
			case userinput.EventStatus:
				st.Toggle()
			default:
				if a, ok := ev.Action(); ok {
					pl.Do(a)
				}
			}
		}

		now := time.Since(start)
		pl.Tick(now.Microseconds())

		if pl.State() == player.ErrorHalt {
			return pl.Err()
		}

		if now-lastStatus >= statusInterval {
			st.Update(pl)
			lastStatus = now
		}

		time.Sleep(pollInterval)
	}
}

func writeMemviz(filename string, pl *player.Player) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("memviz: %v", err)
	}
	memviz.Map(f, pl)
	if err := f.Close(); err != nil {
		return curated.Errorf("memviz: %v", err)
	}
	return nil
}

// newPreferences creates the player preferences with the values from the
// prefs argument. the format argument overrides the format preference
func newPreferences(prefsArg string, format string) (*player.Preferences, error) {
	if prefsArg != "" {
		prefs.PushCommandLineStack(prefsArg)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "regplay", "unused preferences: %s", unused)
			}
		}()
	}

	pp, err := player.NewPreferences()
	if err != nil {
		return nil, err
	}

	if format != "" {
		f, err := codec.ParseFormat(format)
		if err != nil {
			return nil, err
		}
		if err := pp.Format.Set(f.String()); err != nil {
			return nil, err
		}
	}

	return pp, nil
}

// openTrack opens a single track. the format argument takes precedence over
// the filename
func openTrack(filename string, format string) (*tracks.File, error) {
	if format != "" {
		f, err := codec.ParseFormat(format)
		if err != nil {
			return nil, err
		}
		return tracks.OpenFile(filename, f)
	}
	f, _ := tracks.FormatFromFilename(filename)
	return tracks.OpenFile(filename, f)
}

func dump(md *modalflag.Modes) error {
	md.NewMode()

	format := md.AddString("format", "", "format of the track if not decided by filename: RAW, TIMED, RLD")
	frames := md.AddInt("frames", 0, "number of frames to dump (0 for all)")
	writes := md.AddBool("writes", false, "print every register write and voice change")
	clock := md.AddString("clock", "PAL", "clock of the sound chip for note names: PAL, NTSC")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one track required for %s mode", md)
	}

	clk := chip.ClockPAL
	switch strings.ToUpper(*clock) {
	case "PAL":
	case "NTSC":
		clk = chip.ClockNTSC
	default:
		return fmt.Errorf("unknown clock (%s)", *clock)
	}

	trk, err := openTrack(md.GetArg(0), *format)
	if err != nil {
		return err
	}
	defer trk.Close()

	dec, err := codec.NewDecoder(trk.Format(), trk)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(md.Output)
	defer w.Flush()

	var echo io.Writer
	if *writes {
		echo = w
	}
	tr := chip.NewTracker(clk, echo)
	bnk := registers.NewBank(tr)

	for n := 0; *frames == 0 || n < *frames; n++ {
		f, err := dec.Next()
		if err != nil {
			if curated.Is(err, codec.EndOfTrack) {
				break // for loop
			}
			return err
		}

		bnk.Apply(f.Mode, f.Pairs)
		tr.EndFrame()

		if !*writes {
			if f.Override {
				fmt.Fprintf(w, "%6d %s  period %d\n", n, bnk, f.Period)
			} else {
				fmt.Fprintf(w, "%6d %s\n", n, bnk)
			}
		}
	}

	return nil
}

func encode(md *modalflag.Modes) error {
	md.NewMode()

	format := md.AddString("format", "", "format of the input track if not decided by filename: RAW, TIMED")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 2 {
		return fmt.Errorf("input and output files required for %s mode", md)
	}

	trk, err := openTrack(md.GetArg(0), *format)
	if err != nil {
		return err
	}
	defer trk.Close()

	dec, err := codec.NewDecoder(trk.Format(), trk)
	if err != nil {
		return err
	}

	f, err := os.Create(md.GetArg(1))
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	n, err := codec.Convert(dec, w)
	if err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%d frames written to %s\n", n, md.GetArg(1))

	return f.Close()
}

func info(md *modalflag.Modes) error {
	md.NewMode()

	format := md.AddString("format", "", "format of tracks not decided by filename: RAW, TIMED, RLD")
	prefsArg := md.AddString("prefs", "", "player preferences (player.tickscale is used for playing time)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("track or directory of tracks required for %s mode", md)
	}

	pp, err := newPreferences(*prefsArg, *format)
	if err != nil {
		return err
	}
	scale := pp.TickScale.Get().(float64)

	var total time.Duration
	for _, arg := range md.RemainingArgs() {
		dir, err := tracks.NewDirectory(arg, pp.DefaultFormat())
		if err != nil {
			return err
		}

		for i := 0; i < dir.Len(); i++ {
			trk, err := dir.Next()
			if err != nil {
				return err
			}
			s := tracks.Summarise(trk, scale)
			trk.Close()

			fmt.Fprintln(md.Output, s)
			total += s.Duration
		}
	}

	fmt.Fprintf(md.Output, "total playing time: %s\n", total)

	return nil
}
