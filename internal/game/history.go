package game

// HistoryKind categorizes a history record.
type HistoryKind int

const (
	// HistoryTagChange records one native tag write.
	HistoryTagChange HistoryKind = iota + 1
	// HistoryFullEntity records the complete resolved state of a freshly
	// created entity.
	HistoryFullEntity
)

func (k HistoryKind) String() string {
	switch k {
	case HistoryTagChange:
		return "TAG_CHANGE"
	case HistoryFullEntity:
		return "FULL_ENTITY"
	default:
		return "UNKNOWN"
	}
}

// HistoryRecord is one entry of the deterministic replay log. TagChange
// records carry Tag/OldValue/Value; FullEntity records carry CardID and the
// resolved tag snapshot.
type HistoryRecord struct {
	Kind     HistoryKind
	EntityID int
	Tag      GameTag
	OldValue int
	Value    int
	CardID   string
	Tags     map[GameTag]int
}

// HistoryLog is the append-only change log of one game. The core only ever
// appends; replay and observability consumers read it back.
type HistoryLog struct {
	enabled bool
	records []HistoryRecord
}

// NewHistoryLog builds a log with recording toggled as given.
func NewHistoryLog(enabled bool) *HistoryLog {
	return &HistoryLog{enabled: enabled}
}

// Enabled reports whether records are currently being kept.
func (l *HistoryLog) Enabled() bool { return l.enabled }

// SetEnabled toggles recording. Already-recorded entries are kept.
func (l *HistoryLog) SetEnabled(enabled bool) { l.enabled = enabled }

// Append adds a record unconditionally. Callers check Enabled first so they
// can skip building the record at all.
func (l *HistoryLog) Append(r HistoryRecord) {
	l.records = append(l.records, r)
}

// Records returns the recorded entries in append order.
func (l *HistoryLog) Records() []HistoryRecord { return l.records }

// Len reports the number of recorded entries.
func (l *HistoryLog) Len() int { return len(l.records) }

// DrainSince returns the records appended at or after index from, for
// consumers that stream the log incrementally.
func (l *HistoryLog) DrainSince(from int) []HistoryRecord {
	if from < 0 || from >= len(l.records) {
		return nil
	}
	return l.records[from:]
}
