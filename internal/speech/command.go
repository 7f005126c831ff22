package speech

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// Synthesiser binaries tried in order when no command is configured.
var knownCommands = []string{"espeak-ng", "espeak", "say"}

// baseWPM is the words-per-minute both espeak and say use by default.
const baseWPM = 175

// macOS voices by language.
var sayVoices = map[string]string{
	"uk": "Lesya",
	"ru": "Milena",
	"en": "Samantha",
}

// CommandSpeaker speaks by running a local synthesiser binary.
type CommandSpeaker struct {
	logger  zerolog.Logger
	command string
	rate    float64
}

// NewCommandSpeaker builds a speaker around command. An empty command picks
// the first known synthesiser found on PATH. rate scales every utterance.
func NewCommandSpeaker(logger zerolog.Logger, command string, rate float64) *CommandSpeaker {
	if command == "" {
		for _, c := range knownCommands {
			if _, err := exec.LookPath(c); err == nil {
				command = c
				break
			}
		}
	}
	if rate <= 0 {
		rate = 1
	}
	return &CommandSpeaker{
		logger:  logger.With().Str("component", "speech").Str("command", command).Logger(),
		command: command,
		rate:    rate,
	}
}

// IsAvailable reports whether the synthesiser can be run.
func (p *CommandSpeaker) IsAvailable() bool {
	if p.command == "" {
		return false
	}
	_, err := exec.LookPath(p.command)
	return err == nil
}

// Speak runs the synthesiser and waits for it to finish.
func (p *CommandSpeaker) Speak(ctx context.Context, u Utterance) error {
	if !p.IsAvailable() {
		p.logger.Debug().Msg("no speech synthesiser, skipping")
		return fmt.Errorf("speech synthesiser not available")
	}

	args := p.args(u)
	p.logger.Debug().
		Str("locale", u.Locale).
		Int("textLen", len([]rune(u.Text))).
		Msg("speaking")

	out, err := exec.CommandContext(ctx, p.command, args...).CombinedOutput()
	if err != nil {
		p.logger.Debug().Err(err).Str("output", string(out)).Msg("speech failed")
		return fmt.Errorf("run %s: %w", p.command, err)
	}
	return nil
}

func (p *CommandSpeaker) args(u Utterance) []string {
	rate := u.Rate
	if rate <= 0 {
		rate = 1
	}
	wpm := fmt.Sprintf("%d", int(baseWPM*rate*p.rate))
	lang := language(u.Locale)

	switch filepath.Base(p.command) {
	case "say":
		args := []string{"-r", wpm}
		if voice, ok := sayVoices[lang]; ok {
			args = append(args, "-v", voice)
		}
		return append(args, u.Text)
	default:
		return []string{"-v", lang, "-s", wpm, u.Text}
	}
}

// language turns "uk-UA" into "uk".
func language(locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}
	lang, _, _ := strings.Cut(locale, "-")
	return strings.ToLower(lang)
}
