package service

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"

	"github.com/Hyseok176/saint-major-recommender/internal/model"
)

var ErrMajorsNotFound = errors.New("성적표에서 전공 선언을 찾을 수 없습니다")

var (
	// courseLinePattern 세인트 성적표의 과목 행.
	// 학기 토큰, 과목 코드, 과목명, 학점, 등급(선택), 비고(선택) 순서.
	courseLinePattern = regexp.MustCompile(
		`^(20\d{2}-[12SW])\s+([A-Z]{3,5}\d{3,4})\s+(.+?)\s+([0-9]+\.[0-9])\s*(A[+\-0]?|B[+\-0]?|C[+\-0]?|D[+\-0]?|F|FA|U|S|P|W)?\s*(.*)$`)

	// majorsPattern 전공 선언 행. "1전공 수학 2전공 미선택 3전공 미선택" 형태.
	majorsPattern = regexp.MustCompile(`1전공(.+?)2전공(.+?)3전공(.+)`)
)

// ParsedRecord 성적표 한 행에서 추출한 수강 기록
type ParsedRecord struct {
	Semester   model.SemesterInfo
	RawToken   string // 원본 학기 토큰. 예: "2023-S"
	CourseCode string
	CourseName string
	Credit     float64
	Grade      string
	Remarks    model.Remarks
}

// LabeledSemester 연속 학기 번호와 표시 라벨이 부여된 학기 묶음
type LabeledSemester struct {
	Label   string  // 예: "1학기 (2022년 1학기)", "2.5학기 (2023년 여름학기)"
	Number  float64 // 라벨 선두의 숫자 토큰. 정규 학기는 정수, 계절 학기는 x.5
	Info    model.SemesterInfo
	Courses []ParsedRecord // 과목 코드 오름차순
}

// TranscriptParser 세인트 성적표 텍스트 파서.
// 성적표 저장 파일은 EUC-KR 인코딩이므로 읽기 전에 UTF-8로 변환한다.
type TranscriptParser struct {
	logger *zap.Logger
}

// NewTranscriptParser TranscriptParser 인스턴스 생성
func NewTranscriptParser(logger *zap.Logger) *TranscriptParser {
	return &TranscriptParser{logger: logger}
}

// ParseResult 성적표 전체 파싱 결과
type ParseResult struct {
	Majors  [3]string // 1전공, 2전공, 3전공. 미선언 시 "미선택"
	Records []ParsedRecord
}

// Parse EUC-KR 성적표를 읽어 전공 선언과 수강 기록을 추출한다.
// 어느 형식에도 맞지 않는 행은 건너뛰고, 읽기 실패가 아니면 오류를 내지 않는다.
// 전공 선언 행은 첫 번째 것만 취하고 이후 행은 다시 검사하지 않는다.
func (p *TranscriptParser) Parse(r io.Reader) (*ParseResult, error) {
	decoded := transform.NewReader(r, korean.EUCKR.NewDecoder())
	scanner := bufio.NewScanner(decoded)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	result := &ParseResult{Majors: [3]string{"미선택", "미선택", "미선택"}}
	majorsFound := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if !majorsFound && strings.Contains(line, "1전공") {
			if m := majorsPattern.FindStringSubmatch(line); m != nil {
				result.Majors[0] = strings.TrimSpace(m[1])
				result.Majors[1] = strings.TrimSpace(m[2])
				result.Majors[2] = strings.TrimSpace(m[3])
				majorsFound = true
			}
			continue
		}

		m := courseLinePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		info, err := model.ParseSemesterInfo(m[1])
		if err != nil {
			continue
		}

		var credit float64
		fmt.Sscanf(m[4], "%f", &credit)

		record := ParsedRecord{
			Semester:   info,
			RawToken:   m[1],
			CourseCode: m[2],
			CourseName: strings.TrimSpace(m[3]),
			Credit:     credit,
			Grade:      m[5],
			Remarks:    classifyRemarks(m[5], m[6]),
		}
		result.Records = append(result.Records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("성적표 읽기 실패: %w", err)
	}

	p.logger.Debug("성적표 파싱 완료",
		zap.Int("records", len(result.Records)),
		zap.String("major1", result.Majors[0]))
	return result, nil
}

// ExtractMajors 전공 선언 행만 찾아 전공 3개를 반환한다. 업로드 전 미리보기 용도.
func (p *TranscriptParser) ExtractMajors(r io.Reader) ([3]string, error) {
	decoded := transform.NewReader(r, korean.EUCKR.NewDecoder())
	scanner := bufio.NewScanner(decoded)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.Contains(line, "1전공") {
			continue
		}
		if m := majorsPattern.FindStringSubmatch(line); m != nil {
			return [3]string{
				strings.TrimSpace(m[1]),
				strings.TrimSpace(m[2]),
				strings.TrimSpace(m[3]),
			}, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return [3]string{}, fmt.Errorf("성적표 읽기 실패: %w", err)
	}
	return [3]string{}, ErrMajorsNotFound
}

// classifyRemarks 등급과 비고 토큰을 플래그로 변환한다.
// F/FA/U 등급은 낙제, 비고는 쉼표 구분 코드로 R은 재수강, E는 영어 강의,
// M은 중복 과목. 알 수 없는 코드는 무시한다.
func classifyRemarks(grade, remarks string) model.Remarks {
	var r model.Remarks
	switch grade {
	case "F", "FA", "U":
		r.Failed = true
	}
	for _, token := range strings.Split(remarks, ",") {
		switch strings.TrimSpace(token) {
		case "R":
			r.Retake = true
		case "E":
			r.EnglishLecture = true
		case "M":
			r.Duplicate = true
		}
	}
	return r
}

// GroupAndLabel 수강 기록을 학기별로 묶고 연속 학기 라벨을 부여한다.
// 같은 과목을 여러 번 수강한 경우 시간순으로 가장 이른 기록만 남긴다.
// 반환값 두 번째는 마지막 수강 학기의 원본 토큰이다.
func (p *TranscriptParser) GroupAndLabel(records []ParsedRecord) ([]LabeledSemester, string) {
	if len(records) == 0 {
		return nil, ""
	}

	sorted := make([]ParsedRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Semester.OrderKey() < sorted[j].Semester.OrderKey()
	})

	// 재수강 중복 제거: 시간순 정렬 후 첫 등장만 유지
	seen := make(map[string]bool, len(sorted))
	deduped := make([]ParsedRecord, 0, len(sorted))
	for _, rec := range sorted {
		if seen[rec.CourseCode] {
			continue
		}
		seen[rec.CourseCode] = true
		deduped = append(deduped, rec)
	}

	buckets := make(map[int][]ParsedRecord)
	var keys []int
	for _, rec := range deduped {
		k := rec.Semester.OrderKey()
		if _, ok := buckets[k]; !ok {
			keys = append(keys, k)
		}
		buckets[k] = append(buckets[k], rec)
	}
	sort.Ints(keys)

	// 정규 학기만 연속 번호를 증가시키고, 계절 학기는 직전 정규 학기 + 0.5
	var groups []LabeledSemester
	regularCount := 0
	for _, k := range keys {
		courses := buckets[k]
		sort.Slice(courses, func(i, j int) bool {
			return courses[i].CourseCode < courses[j].CourseCode
		})

		info := courses[0].Semester
		var label string
		var number float64
		if info.IsRegular() {
			regularCount++
			number = float64(regularCount)
			label = fmt.Sprintf("%d학기 (%d년 %s)", regularCount, info.Year(), termDisplay(info.Type()))
		} else {
			number = float64(regularCount) + 0.5
			label = fmt.Sprintf("%.1f학기 (%d년 %s)", number, info.Year(), termDisplay(info.Type()))
		}

		groups = append(groups, LabeledSemester{
			Label:   label,
			Number:  number,
			Info:    info,
			Courses: courses,
		})
	}

	lastSemester := sorted[len(sorted)-1].RawToken
	return groups, lastSemester
}

// termDisplay 학기 구분 토큰의 표시 이름
func termDisplay(termType string) string {
	switch termType {
	case "1":
		return "1학기"
	case "2":
		return "2학기"
	case "S":
		return "여름학기"
	default:
		return "겨울학기"
	}
}
