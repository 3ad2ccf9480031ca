package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"log/slog"

	"github.com/genpass/genpass-go/internal/alphabet"
	"github.com/genpass/genpass-go/internal/clipboard"
	"github.com/genpass/genpass-go/internal/crypto"
	"github.com/genpass/genpass-go/internal/model"
	"github.com/genpass/genpass-go/internal/symbols"
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	out           io.Writer
	publisher     clipboard.Publisher
	logger        *slog.Logger
	rand          io.Reader
	defaultLength int
}

// NewGeneratorService creates a new GeneratorService. Passwords are printed
// to out unless copying is requested, in which case they go to publisher.
func NewGeneratorService(out io.Writer, publisher clipboard.Publisher, logger *slog.Logger, defaultLength int) *GeneratorService {
	return &GeneratorService{
		out:           out,
		publisher:     publisher,
		logger:        logger,
		rand:          rand.Reader,
		defaultLength: defaultLength,
	}
}

// Run builds the alphabet for opts, draws a password and emits it. Nothing
// is emitted unless the whole password was produced.
func (s *GeneratorService) Run(ctx context.Context, opts model.Options) error {
	pw, _, err := s.generate(opts)
	if err != nil {
		return err
	}
	defer pw.Wipe()

	return s.Emit(ctx, pw, opts.Copy)
}

// Emit prints pw followed by a newline, or publishes it to the clipboard
// when toClipboard is set. The two paths are exclusive.
func (s *GeneratorService) Emit(ctx context.Context, pw *crypto.Password, toClipboard bool) error {
	if toClipboard {
		if err := s.publisher.Publish(ctx, pw.Bytes()); err != nil {
			return fmt.Errorf("clipboard: %w", err)
		}
		s.logger.Debug("password published to clipboard")
		return nil
	}

	line := make([]byte, 0, len(pw.Bytes())+1)
	line = append(line, pw.Bytes()...)
	line = append(line, '\n')
	_, err := s.out.Write(line)
	for i := range line {
		line[i] = 0
	}
	return err
}

// Generate produces a password for an API request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := model.Options{
		Disabled: disabledGroups(req),
		Allow:    req.Allow,
		Deny:     req.Deny,
		Length:   req.Length,
	}
	if opts.Length == 0 {
		opts.Length = s.defaultLength
	}
	if opts.Length > crypto.MaxLength {
		return model.GenerateResponse{}, crypto.ErrLengthTooLong
	}

	pw, size, err := s.generate(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}
	defer pw.Wipe()

	return model.GenerateResponse{
		Password:     pw.String(),
		Length:       opts.Length,
		AlphabetSize: size,
	}, nil
}

func (s *GeneratorService) generate(opts model.Options) (*crypto.Password, int, error) {
	if opts.Length < 1 {
		return nil, 0, crypto.ErrInvalidLength
	}

	set, err := alphabet.Build(opts, alphabet.LogObserver{Logger: s.logger})
	if err != nil {
		return nil, 0, err
	}
	if set.Len() == 1 {
		s.logger.Warn("there is only one symbol available for password generation")
	}

	pw, err := crypto.Generate(set.Runes(), opts.Length, s.rand)
	if err != nil {
		return nil, 0, err
	}
	return pw, set.Len(), nil
}

func disabledGroups(req model.GenerateRequest) []string {
	var out []string
	if req.NoLatinUpper {
		out = append(out, symbols.LatinUpper)
	}
	if req.NoLatinLower {
		out = append(out, symbols.LatinLower)
	}
	if req.NoDigits {
		out = append(out, symbols.Digits)
	}
	if req.NoSpecial {
		out = append(out, symbols.Special)
	}
	return out
}
