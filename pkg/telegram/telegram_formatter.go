package telegram

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"golang-stock-pulse/internal/ingestion/dto"
	"golang-stock-pulse/pkg/utils"
)

// maxMessageLen is the Telegram message size limit with a little headroom.
const maxMessageLen = 4090

// FormatCandleRunReport formats a candle import run into a Markdown string for Telegram.
func FormatCandleRunReport(results []dto.CandleImportResult, startedAt, finishedAt time.Time) string {
	var builder strings.Builder

	builder.WriteString("🕯 *Candle Import Report*\n\n")

	var inserted, failures int
	for _, r := range results {
		inserted += r.Inserted
		if r.Failure != "" {
			failures++
		}
	}

	builder.WriteString(fmt.Sprintf("📊 *Tickers:* %d | *Inserted:* %d | *Failed:* %d\n", len(results), inserted, failures))
	builder.WriteString(fmt.Sprintf("⏱ *Duration:* %s\n\n", finishedAt.Sub(startedAt).Round(time.Second)))

	for _, r := range results {
		if r.Failure != "" {
			builder.WriteString(fmt.Sprintf("🔴 `%s` %s\n", r.Ticker, r.Failure))
			continue
		}
		builder.WriteString(fmt.Sprintf("🟢 `%s` inserted %d\n", r.Ticker, r.Inserted))
	}

	builder.WriteString(fmt.Sprintf("\n📅 %s\n", utils.PrettyDate(finishedAt)))

	return truncateMessage(builder.String())
}

// FormatNewsRunReport formats a news import run into a Markdown string for Telegram.
func FormatNewsRunReport(results []dto.NewsImportResult, startedAt, finishedAt time.Time) string {
	var builder strings.Builder

	builder.WriteString("📰 *News Import Report*\n\n")

	var inserted, skipped, errorCount int
	for _, r := range results {
		inserted += r.Inserted
		skipped += r.Skipped
		errorCount += r.Errors
	}

	builder.WriteString(fmt.Sprintf("📊 *Tickers:* %d | *Inserted:* %d | *Skipped:* %d | *Errors:* %d\n", len(results), inserted, skipped, errorCount))
	builder.WriteString(fmt.Sprintf("⏱ *Duration:* %s\n\n", finishedAt.Sub(startedAt).Round(time.Second)))

	for _, r := range results {
		if r.Failure != "" {
			builder.WriteString(fmt.Sprintf("🔴 `%s` %s\n", r.Ticker, r.Failure))
			continue
		}
		builder.WriteString(fmt.Sprintf("🟢 `%s` inserted %d, skipped %d, errors %d\n", r.Ticker, r.Inserted, r.Skipped, r.Errors))
	}

	builder.WriteString(fmt.Sprintf("\n📅 %s\n", utils.PrettyDate(finishedAt)))

	return truncateMessage(builder.String())
}

// truncateMessage keeps a message under the Telegram length limit.
func truncateMessage(msg string) string {
	if utf8.RuneCountInString(msg) <= maxMessageLen {
		return msg
	}
	return utils.TruncateString(msg, maxMessageLen-1) + "…"
}
