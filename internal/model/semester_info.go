package model

import (
	"errors"
	"regexp"
	"strconv"
)

// ErrMalformedSemester 학기 토큰이 "YYYY-K" (K ∈ 1,2,S,W) 형식이 아님
var ErrMalformedSemester = errors.New("잘못된 학기 형식")

var semesterPattern = regexp.MustCompile(`^(20\d{2})-([12SW])$`)

// SemesterInfo 원시 학기 토큰("2023-1", "2023-S")을 해석한 값 타입.
// 정규학기(1·2학기)와 계절학기(여름 S·겨울 W)를 포함해 시간순 전순서를 제공한다.
//
// 정렬 키 배치:
//
//	2021-1 -> 202101
//	2021-S -> 202103 (1학기 뒤, 2학기 앞)
//	2021-2 -> 202105
//	2021-W -> 202107 (2학기 뒤)
type SemesterInfo struct {
	year     int
	termType string // "1", "2", "S", "W"
}

// ParseSemesterInfo 원시 학기 문자열을 파싱한다.
// 형식이 맞지 않으면 ErrMalformedSemester를 반환한다.
func ParseSemesterInfo(raw string) (SemesterInfo, error) {
	m := semesterPattern.FindStringSubmatch(raw)
	if m == nil {
		return SemesterInfo{}, ErrMalformedSemester
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return SemesterInfo{}, ErrMalformedSemester
	}
	return SemesterInfo{year: year, termType: m[2]}, nil
}

// Year 연도
func (s SemesterInfo) Year() int { return s.year }

// Type 학기 코드 ("1", "2", "S", "W")
func (s SemesterInfo) Type() string { return s.termType }

// IsRegular 정규학기(1학기·2학기) 여부. 계절학기(S·W)는 false.
func (s SemesterInfo) IsRegular() bool {
	return s.termType == "1" || s.termType == "2"
}

// OrderKey 시간순 정렬 키. 같은 연도 안에서 1 < S < 2 < W 순서를 보장한다.
func (s SemesterInfo) OrderKey() int {
	var typeValue int
	switch s.termType {
	case "1":
		typeValue = 1
	case "S":
		typeValue = 3
	case "2":
		typeValue = 5
	case "W":
		typeValue = 7
	}
	return s.year*100 + typeValue
}

// Before 시간순 비교
func (s SemesterInfo) Before(other SemesterInfo) bool {
	return s.OrderKey() < other.OrderKey()
}

// String 원시 표기 "YYYY-K" 복원
func (s SemesterInfo) String() string {
	return strconv.Itoa(s.year) + "-" + s.termType
}
