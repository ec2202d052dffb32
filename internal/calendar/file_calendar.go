package calendar

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

// FileCalendar implements HolidayCalendar using a local text file
type FileCalendar struct {
	filePath string
	logger   *zap.Logger
	table    *HolidayTable
}

// NewFileCalendar creates a new FileCalendar instance
func NewFileCalendar(filePath string, logger *zap.Logger) *FileCalendar {
	return &FileCalendar{
		filePath: filePath,
		logger:   logger,
		table:    NewHolidayTable(),
	}
}

// Load loads holiday data from file
func (fc *FileCalendar) Load() error {
	file, err := os.Open(fc.filePath)
	if err != nil {
		return fmt.Errorf("failed to open holidays file: %w", err)
	}
	defer file.Close()

	if err := fc.read(file); err != nil {
		return err
	}

	fc.logger.Info("Holidays file loaded",
		zap.String("file", fc.filePath),
		zap.Ints("years", fc.table.Years()))

	return nil
}

func (fc *FileCalendar) read(r io.Reader) error {
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Format: YYYY-MM-DD name
		// Example: 2026-01-01 Nowy Rok
		parts := strings.SplitN(line, " ", 2)
		if len(parts) < 2 || strings.TrimSpace(parts[1]) == "" {
			fc.logger.Warn("Invalid line format", zap.String("line", line))
			continue
		}

		date, err := time.Parse("2006-01-02", parts[0])
		if err != nil {
			fc.logger.Warn("Failed to parse date", zap.String("date", parts[0]), zap.Error(err))
			continue
		}

		fc.table.Add(date, strings.TrimSpace(parts[1]))
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading holidays file: %w", err)
	}
	return nil
}

// PublicHoliday returns the holiday name for the given date
func (fc *FileCalendar) PublicHoliday(date time.Time) (string, bool) {
	return fc.table.PublicHoliday(date)
}

// Table returns the loaded holiday table
func (fc *FileCalendar) Table() *HolidayTable {
	return fc.table
}
