package main

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/memory"
	"github.com/apache/arrow/go/v18/parquet"
	"github.com/apache/arrow/go/v18/parquet/compress"
	"github.com/apache/arrow/go/v18/parquet/pqarrow"
	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb"
	"github.com/vbauerster/mpb/decor"
	"github.com/willbeason/bondsmith"
	"github.com/willbeason/bondsmith/fileio"
	"github.com/willbeason/time-usage/pkg/classify"
	"github.com/willbeason/time-usage/pkg/csvio"
	"github.com/willbeason/time-usage/pkg/tables"
	"github.com/willbeason/time-usage/pkg/timeusage"
	"golang.org/x/term"
)

const (
	FlagOut      = "out"
	FlagCheckSql = "check-sql"
)

func init() {
	cmd.Flags().String(FlagOut, "", "directory to write the grouped summary to as Parquet")
	cmd.Flags().Bool(FlagCheckSql, false, "cross-check the direct aggregation against the SQL path")
}

func main() {
	err := cmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var cmd = cobra.Command{
	Use:     "timeusage FILE|DIR",
	Short:   "summarizes average daily hours spent on primary needs, work, and other activities",
	Args:    cobra.ExactArgs(1),
	Version: "0.1.0",
	RunE:    runE,
}

var ErrTimeUsage = errors.New("summarizing time usage")

var diaryPattern = regexp.MustCompile(`\.csv(\.gz)?$`)

func runE(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	inPath := args[0]

	record, err := readDiary(inPath)
	if err != nil {
		return fmt.Errorf("%w: reading %q: %w", ErrTimeUsage, inPath, err)
	}
	defer record.Release()

	schema := record.Schema()
	names := make([]string, len(schema.Fields()))
	for i, field := range schema.Fields() {
		names[i] = field.Name
	}

	summaries, err := timeusage.Project(record, classify.Columns(names))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTimeUsage, err)
	}

	grouped := timeusage.Group(summaries)

	checkSql, err := cmd.Flags().GetBool(FlagCheckSql)
	if err != nil {
		return err
	}
	if checkSql {
		err = crossCheckSql(ctx, summaries, grouped)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrTimeUsage, err)
		}
	}

	printGrouped(grouped)

	outDir, err := cmd.Flags().GetString(FlagOut)
	if err != nil {
		return err
	}
	if outDir != "" {
		err = writeGrouped(outDir, grouped)
		if err != nil {
			return fmt.Errorf("%w: writing summary: %w", ErrTimeUsage, err)
		}
	}

	return nil
}

// readDiary reads a diary CSV file, or a directory of them, into a single
// Arrow record, showing read progress.
func readDiary(inPath string) (record arrow.Record, err error) {
	inPaths, totalSize, err := diaryPaths(inPath)
	if err != nil {
		return nil, err
	}

	countReader := bondsmith.NewCountReader(fileio.NewMultiFileReader(inPaths))

	var reader io.Reader = countReader
	if strings.HasSuffix(inPaths[0], ".gz") {
		// gzip correctly handles concatenated files.
		reader, err = gzip.NewReader(countReader)
		if err != nil {
			return nil, fmt.Errorf("creating gzip reader: %w", err)
		}
	}

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width = 80
	}
	progress := mpb.New(mpb.WithWidth(width))

	bar := progress.AddBar(totalSize,
		mpb.AppendDecorators(decor.AverageETA(decor.ET_STYLE_GO)),
		mpb.PrependDecorators(decor.Name(filepath.Base(inPath))),
		mpb.BarRemoveOnComplete(),
	)

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()

		lastSeen := 0
		start := time.Now()
		for {
			select {
			case <-done:
				bar.IncrBy(int(totalSize)-lastSeen, time.Since(start))
				return
			case <-ticker.C:
				curProgress := int(countReader.Count())
				bar.IncrBy(curProgress-lastSeen, time.Since(start))
				lastSeen = curProgress
			}
		}
	}()

	record, err = csvio.ReadTable(reader, memory.NewGoAllocator())
	close(done)
	progress.Wait()

	return record, err
}

// diaryPaths resolves inPath to the diary files to read and their combined
// size. Directory entries are read in name order; mixing compressed and
// uncompressed files in one directory is not supported since the combined
// stream is decompressed as a whole.
func diaryPaths(inPath string) ([]string, int64, error) {
	stat, err := os.Stat(inPath)
	if err != nil {
		return nil, 0, err
	}

	if !stat.IsDir() {
		return []string{inPath}, stat.Size(), nil
	}

	entries, err := os.ReadDir(inPath)
	if err != nil {
		return nil, 0, err
	}

	var inPaths []string
	var totalSize int64
	gzipped := false
	for _, entry := range entries {
		if entry.IsDir() || !diaryPattern.MatchString(entry.Name()) {
			continue
		}

		entryPath := filepath.Join(inPath, entry.Name())
		info, err := entry.Info()
		if err != nil {
			return nil, 0, err
		}

		if len(inPaths) > 0 && gzipped != strings.HasSuffix(entry.Name(), ".gz") {
			return nil, 0, fmt.Errorf("directory %q mixes compressed and uncompressed diary files", inPath)
		}
		gzipped = strings.HasSuffix(entry.Name(), ".gz")

		inPaths = append(inPaths, entryPath)
		totalSize += info.Size()
	}

	if len(inPaths) == 0 {
		return nil, 0, fmt.Errorf("no diary files in %q", inPath)
	}

	return inPaths, totalSize, nil
}

// crossCheckSql recomputes the grouped summary through the declarative path
// and fails on any divergence from the direct path.
func crossCheckSql(ctx context.Context, summaries, grouped []timeusage.Summary) error {
	db, err := timeusage.OpenMemoryDB()
	if err != nil {
		return err
	}
	defer func() {
		errClose := db.Close()
		if errClose != nil {
			fmt.Println(errClose)
		}
	}()

	fromSql, err := timeusage.GroupSQL(ctx, db, summaries)
	if err != nil {
		return err
	}

	if len(fromSql) != len(grouped) {
		return fmt.Errorf("direct path produced %d groups; SQL path produced %d",
			len(grouped), len(fromSql))
	}
	for i := range grouped {
		if grouped[i] != fromSql[i] {
			return fmt.Errorf("paths diverge at group %d: direct %+v, SQL %+v",
				i, grouped[i], fromSql[i])
		}
	}

	return nil
}

func printGrouped(grouped []timeusage.Summary) {
	fmt.Printf("%-12s %-7s %-7s %13s %6s %7s\n",
		tables.WorkingFieldName, tables.SexFieldName, tables.AgeFieldName,
		tables.PrimaryNeedsFieldName, tables.WorkFieldName, tables.OtherFieldName)

	for _, group := range grouped {
		fmt.Printf("%-12s %-7s %-7s %13.1f %6.1f %7.1f\n",
			group.Working, group.Sex, group.Age,
			group.PrimaryNeeds, group.Work, group.Other)
	}
}

func writeGrouped(outDir string, grouped []timeusage.Summary) error {
	err := os.MkdirAll(outDir, os.ModePerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	record, err := timeusage.SummaryRecord(memory.NewGoAllocator(), grouped)
	if err != nil {
		return err
	}
	defer record.Release()

	outPath := filepath.Join(outDir, tables.SummaryName+tables.ParquetExt)
	outFile, err := os.Create(outPath)
	if err != nil {
		return err
	}
	// Don't close outFile; parquet handles closing it.
	writer, err := pqarrow.NewFileWriter(
		tables.Summary,
		outFile,
		parquet.NewWriterProperties(parquet.WithCompression(compress.Codecs.Gzip),
			parquet.WithCompressionLevel(gzip.BestCompression)),
		pqarrow.DefaultWriterProps(),
	)
	if err != nil {
		return err
	}

	defer func() {
		errClose := writer.Close()
		if errClose != nil {
			fmt.Println(errClose)
		}
	}()

	return writer.Write(record)
}
