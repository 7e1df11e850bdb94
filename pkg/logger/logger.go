package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"
)

// Category represents a log category
type Category string

const (
	CategoryAuth         Category = "auth"
	CategoryAPI          Category = "api"
	CategoryDB           Category = "db"
	CategoryContent      Category = "content"
	CategoryViews        Category = "views"
	CategoryNotification Category = "notification"
	CategoryWebSocket    Category = "websocket"
	CategoryScheduler    Category = "scheduler"
	CategoryStartup      Category = "startup"
)

// AllCategories lists every category that gets its own log file
var AllCategories = []Category{
	CategoryAuth,
	CategoryAPI,
	CategoryDB,
	CategoryContent,
	CategoryViews,
	CategoryNotification,
	CategoryWebSocket,
	CategoryScheduler,
	CategoryStartup,
}

// Level represents log level
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// LogEntry represents a structured log entry
type LogEntry struct {
	Timestamp time.Time              `json:"timestamp"`
	Level     Level                  `json:"level"`
	Category  Category               `json:"category"`
	Action    string                 `json:"action"`
	Message   string                 `json:"message"`
	Data      map[string]interface{} `json:"data,omitempty"`
	UserID    string                 `json:"user_id,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
	Duration  string                 `json:"duration,omitempty"`
	Error     string                 `json:"error,omitempty"`
}

// Logger writes JSON lines into one file per category and day
type Logger struct {
	mu      sync.Mutex
	logDir  string
	writers map[Category]*os.File
	console bool
}

var (
	defaultLogger *Logger
	once          sync.Once
)

// Init initializes the default logger
func Init(logDir string, console bool) error {
	var err error
	once.Do(func() {
		defaultLogger, err = NewLogger(logDir, console)
	})
	return err
}

// NewLogger creates a new logger
func NewLogger(logDir string, console bool) (*Logger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return &Logger{
		logDir:  logDir,
		writers: make(map[Category]*os.File),
		console: console,
	}, nil
}

func fileName(category Category, day time.Time) string {
	return fmt.Sprintf("%s_%s.log", category, day.Format("2006-01-02"))
}

// getWriter returns the file for today's category log, rotating at midnight
func (l *Logger) getWriter(category Category) (io.Writer, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	name := fileName(category, time.Now())

	if writer, exists := l.writers[category]; exists {
		if info, err := writer.Stat(); err == nil && info.Name() == name {
			return writer, nil
		}
		writer.Close()
	}

	file, err := os.OpenFile(filepath.Join(l.logDir, name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	l.writers[category] = file
	return file, nil
}

// Log writes a log entry
func (l *Logger) Log(entry LogEntry) {
	if l == nil {
		return
	}
	entry.Timestamp = time.Now()

	jsonData, err := json.Marshal(entry)
	if err != nil {
		fmt.Printf("Error marshaling log entry: %v\n", err)
		return
	}

	writer, err := l.getWriter(entry.Category)
	if err != nil {
		fmt.Printf("Error getting log writer: %v\n", err)
	} else {
		fmt.Fprintln(writer, string(jsonData))
	}

	if l.console {
		l.printToConsole(entry)
	}
}

var levelColors = map[Level]string{
	LevelDebug: "\033[36m",
	LevelInfo:  "\033[32m",
	LevelWarn:  "\033[33m",
	LevelError: "\033[31m",
}

func (l *Logger) printToConsole(entry LogEntry) {
	const reset = "\033[0m"

	fmt.Printf("%s[%s]%s [%s] [%s] %s: %s",
		levelColors[entry.Level],
		entry.Level,
		reset,
		entry.Timestamp.Format("15:04:05.000"),
		entry.Category,
		entry.Action,
		entry.Message,
	)

	if entry.UserID != "" {
		fmt.Printf(" (user: %s)", entry.UserID)
	}
	if entry.Duration != "" {
		fmt.Printf(" (duration: %s)", entry.Duration)
	}
	if entry.Error != "" {
		fmt.Printf(" ERROR: %s", entry.Error)
	}
	fmt.Println()

	if len(entry.Data) > 0 {
		dataJSON, _ := json.MarshalIndent(entry.Data, "    ", "  ")
		fmt.Printf("    Data: %s\n", string(dataJSON))
	}
}

// Close closes all file writers
func (l *Logger) Close() {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, writer := range l.writers {
		writer.Close()
	}
	l.writers = make(map[Category]*os.File)
}

// Default returns the default logger, creating ./logs on first use
func Default() *Logger {
	if defaultLogger == nil {
		Init("logs", true)
	}
	return defaultLogger
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func write(level Level, category Category, action, message string, err error, data map[string]interface{}) {
	Default().Log(LogEntry{
		Level:    level,
		Category: category,
		Action:   action,
		Message:  message,
		Error:    errString(err),
		Data:     data,
	})
}

// Auth logs authentication related events
func Auth(action, message string, data map[string]interface{}) {
	write(LevelInfo, CategoryAuth, action, message, nil, data)
}

// AuthError logs authentication errors
func AuthError(action, message string, err error, data map[string]interface{}) {
	write(LevelError, CategoryAuth, action, message, err, data)
}

// API logs API request/response events
func API(action, message string, data map[string]interface{}) {
	write(LevelInfo, CategoryAPI, action, message, nil, data)
}

// DB logs database operations
func DB(action, message string, data map[string]interface{}) {
	write(LevelDebug, CategoryDB, action, message, nil, data)
}

// DBError logs a failed database operation. Callers pass the table in data.
func DBError(action, message string, err error, data map[string]interface{}) {
	write(LevelError, CategoryDB, action, message, err, data)
}

// Content logs content management events (create, update, delete)
func Content(action, message string, data map[string]interface{}) {
	write(LevelInfo, CategoryContent, action, message, nil, data)
}

// ContentError logs content management errors
func ContentError(action, message string, err error, data map[string]interface{}) {
	write(LevelError, CategoryContent, action, message, err, data)
}

// Views logs view tracking events
func Views(action, message string, data map[string]interface{}) {
	write(LevelInfo, CategoryViews, action, message, nil, data)
}

// ViewsError logs view tracking errors
func ViewsError(action, message string, err error, data map[string]interface{}) {
	write(LevelError, CategoryViews, action, message, err, data)
}

// Notification logs notification events
func Notification(action, message string, data map[string]interface{}) {
	write(LevelInfo, CategoryNotification, action, message, nil, data)
}

// NotificationError logs notification errors
func NotificationError(action, message string, err error, data map[string]interface{}) {
	write(LevelError, CategoryNotification, action, message, err, data)
}

// WebSocket logs WebSocket related events
func WebSocket(action, message string, data map[string]interface{}) {
	write(LevelInfo, CategoryWebSocket, action, message, nil, data)
}

// WebSocketError logs WebSocket errors
func WebSocketError(action, message string, err error, data map[string]interface{}) {
	write(LevelError, CategoryWebSocket, action, message, err, data)
}

// Scheduler logs scheduled job events
func Scheduler(action, message string, data map[string]interface{}) {
	write(LevelInfo, CategoryScheduler, action, message, nil, data)
}

// SchedulerWarn logs scheduler warnings
func SchedulerWarn(action, message string, data map[string]interface{}) {
	write(LevelWarn, CategoryScheduler, action, message, nil, data)
}

// SchedulerError logs scheduler errors
func SchedulerError(action, message string, err error, data map[string]interface{}) {
	write(LevelError, CategoryScheduler, action, message, err, data)
}

// Startup logs startup/initialization events
func Startup(action, message string, data map[string]interface{}) {
	write(LevelInfo, CategoryStartup, action, message, nil, data)
}

// StartupError logs startup errors
func StartupError(action, message string, err error, data map[string]interface{}) {
	write(LevelError, CategoryStartup, action, message, err, data)
}

// StartupWarn logs startup warnings
func StartupWarn(action, message string, data map[string]interface{}) {
	write(LevelWarn, CategoryStartup, action, message, nil, data)
}

// Info logs info level message
func Info(category Category, action, message string, data map[string]interface{}) {
	write(LevelInfo, category, action, message, nil, data)
}

// Error logs error level message
func Error(category Category, action, message string, err error, data map[string]interface{}) {
	write(LevelError, category, action, message, err, data)
}

// Debug logs debug level message
func Debug(category Category, action, message string, data map[string]interface{}) {
	write(LevelDebug, category, action, message, nil, data)
}

// Warn logs warning level message
func Warn(category Category, action, message string, data map[string]interface{}) {
	write(LevelWarn, category, action, message, nil, data)
}

// GetTypeName returns the dynamic type name of v for diagnostics
func GetTypeName(v interface{}) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}

// ReadLogsOptions options for reading logs
type ReadLogsOptions struct {
	Category Category // Filter by category (empty = all)
	Level    Level    // Filter by level (empty = all)
	Lines    int      // Number of lines to return (default 100)
	Search   string   // Search in message/action/error
}

// ReadLogs reads today's log entries from the default logger
func ReadLogs(opts ReadLogsOptions) ([]LogEntry, error) {
	return Default().ReadLogs(opts)
}

// ReadLogs reads today's log entries, newest first
func (l *Logger) ReadLogs(opts ReadLogsOptions) ([]LogEntry, error) {
	if opts.Lines <= 0 {
		opts.Lines = 100
	}
	if opts.Lines > 1000 {
		opts.Lines = 1000
	}

	categories := AllCategories
	if opts.Category != "" {
		categories = []Category{opts.Category}
	}

	search := strings.ToLower(opts.Search)
	today := time.Now()
	var entries []LogEntry

	for _, cat := range categories {
		data, err := os.ReadFile(filepath.Join(l.logDir, fileName(cat, today)))
		if err != nil {
			continue
		}

		for _, line := range strings.Split(string(data), "\n") {
			if line == "" {
				continue
			}

			var entry LogEntry
			if err := json.Unmarshal([]byte(line), &entry); err != nil {
				continue
			}

			if opts.Level != "" && entry.Level != opts.Level {
				continue
			}
			if search != "" &&
				!strings.Contains(strings.ToLower(entry.Message), search) &&
				!strings.Contains(strings.ToLower(entry.Action), search) &&
				!strings.Contains(strings.ToLower(entry.Error), search) {
				continue
			}

			entries = append(entries, entry)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})

	if len(entries) > opts.Lines {
		entries = entries[:opts.Lines]
	}

	return entries, nil
}

// GetLogDir returns the log directory path
func GetLogDir() string {
	return Default().logDir
}

// ListLogFiles returns list of log files
func ListLogFiles() ([]string, error) {
	return Default().ListLogFiles()
}

// ListLogFiles returns list of log files in the log directory
func (l *Logger) ListLogFiles() ([]string, error) {
	var files []string

	entries, err := os.ReadDir(l.logDir)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".log" {
			files = append(files, entry.Name())
		}
	}

	return files, nil
}
