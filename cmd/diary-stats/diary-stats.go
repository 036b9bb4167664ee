package main

import (
	"compress/gzip"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb"
	"github.com/vbauerster/mpb/decor"
	"github.com/willbeason/bondsmith"
	"github.com/willbeason/time-usage/pkg/csvio"
	"golang.org/x/term"
)

const IncEvery = 1 << 10

func main() {
	cmd.Flags().String("out", "", "output file path (default: stdout)")

	err := cmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var cmd = cobra.Command{
	Use:     "diary-stats FILE",
	Short:   "Collect statistics about the columns of an activity-diary CSV file",
	Args:    cobra.ExactArgs(1),
	Version: "0.1.0",
	RunE:    runE,
}

var ErrDiaryStats = errors.New("getting diary statistics")

func runE(cmd *cobra.Command, args []string) error {
	inPath := args[0]

	stat, err := os.Stat(inPath)
	if err != nil {
		return fmt.Errorf("%w: stat %q: %w", ErrDiaryStats, inPath, err)
	}

	file, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("%w: opening %q: %w", ErrDiaryStats, inPath, err)
	}
	defer func() {
		errClose := file.Close()
		if errClose != nil {
			fmt.Println(errClose)
		}
	}()

	countReader := bondsmith.NewCountReader(file)
	var reader io.Reader = countReader
	if strings.HasSuffix(inPath, ".gz") {
		reader, err = gzip.NewReader(countReader)
		if err != nil {
			return fmt.Errorf("%w: starting gzip reader stream for %q: %w", ErrDiaryStats, inPath, err)
		}
	}

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width = 80
	}
	p := mpb.New(mpb.WithWidth(width))

	count := func() int {
		return int(countReader.Count())
	}
	header, columns, err := collectStats(p, reader, count, stat.Size(), filepath.Base(inPath))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDiaryStats, err)
	}

	outPath, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}

	outFile := os.Stdout
	if outPath != "" {
		outFile, err = os.Create(outPath)
		if err != nil {
			return err
		}
	}

	for i, name := range header {
		_, err = fmt.Fprintf(outFile, "%s;%s\n", name, columns[i])
		if err != nil {
			return err
		}
	}

	return nil
}

// collectStats scans every row of the diary, feeding each cell to its
// column's statistics. The first column is the free-text case identifier;
// every other column must be numeric.
func collectStats(p *mpb.Progress, reader io.Reader, count func() int, size int64, name string) ([]string, []csvio.ColumnStats, error) {
	csvReader := csv.NewReader(reader)
	csvReader.ReuseRecord = true

	line, err := csvReader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, csvio.ErrNoHeader
		}
		return nil, nil, fmt.Errorf("reading header row: %w", err)
	}

	header := make([]string, len(line))
	copy(header, line)

	columns := make([]csvio.ColumnStats, len(header))
	columns[0] = csvio.NewIdStats()
	for i := 1; i < len(header); i++ {
		columns[i] = csvio.NewNumberStats()
	}

	bar := p.AddBar(size,
		mpb.AppendDecorators(decor.AverageETA(decor.ET_STYLE_GO)),
		mpb.PrependDecorators(decor.Name(name)),
		mpb.BarRemoveOnComplete(),
	)

	i := 0
	lastSeen := 0
	start := time.Now()
	for line, err = csvReader.Read(); err == nil; line, err = csvReader.Read() {
		for column, cell := range line {
			errAdd := columns[column].Add(cell)
			if errAdd != nil {
				return nil, nil, fmt.Errorf("row %d, column %q: %w", i+1, header[column], errAdd)
			}
		}

		i++
		if i%IncEvery == 0 {
			curProgress := count()
			bar.IncrBy(curProgress-lastSeen, time.Since(start))
			lastSeen = curProgress
		}
	}
	if !errors.Is(err, io.EOF) {
		return nil, nil, fmt.Errorf("reading diary rows: %w", err)
	}
	bar.IncrBy(count()-lastSeen, time.Since(start))
	p.Wait()

	return header, columns, nil
}
