package model

import (
	"errors"
	"sort"
	"testing"
)

func TestParseSemesterInfo_Valid(t *testing.T) {
	tests := []struct {
		raw       string
		year      int
		termType  string
		isRegular bool
	}{
		{"2021-1", 2021, "1", true},
		{"2021-2", 2021, "2", true},
		{"2021-S", 2021, "S", false},
		{"2021-W", 2021, "W", false},
		{"2099-1", 2099, "1", true},
	}

	for _, tt := range tests {
		info, err := ParseSemesterInfo(tt.raw)
		if err != nil {
			t.Fatalf("ParseSemesterInfo(%q) 실패: %v", tt.raw, err)
		}
		if info.Year() != tt.year {
			t.Errorf("%q: 기대 Year=%d, 실제=%d", tt.raw, tt.year, info.Year())
		}
		if info.Type() != tt.termType {
			t.Errorf("%q: 기대 Type=%s, 실제=%s", tt.raw, tt.termType, info.Type())
		}
		if info.IsRegular() != tt.isRegular {
			t.Errorf("%q: 기대 IsRegular=%v, 실제=%v", tt.raw, tt.isRegular, info.IsRegular())
		}
		if info.String() != tt.raw {
			t.Errorf("%q: String() 복원 불일치, 실제=%s", tt.raw, info.String())
		}
	}
}

func TestParseSemesterInfo_Malformed(t *testing.T) {
	for _, raw := range []string{"", "2021", "2021-3", "2021-s", "21-1", "1999-1", "2021-1 ", "2021-SW"} {
		_, err := ParseSemesterInfo(raw)
		if !errors.Is(err, ErrMalformedSemester) {
			t.Errorf("ParseSemesterInfo(%q): 기대 ErrMalformedSemester, 실제: %v", raw, err)
		}
	}
}

func TestSemesterInfo_OrderKey_Chronological(t *testing.T) {
	// 같은 연도 안에서 1 < S < 2 < W, 연도를 넘어서도 단조 증가
	raws := []string{"2021-1", "2021-S", "2021-2", "2021-W", "2022-1", "2022-S", "2022-2", "2022-W"}

	prev := 0
	for _, raw := range raws {
		info, err := ParseSemesterInfo(raw)
		if err != nil {
			t.Fatalf("ParseSemesterInfo(%q) 실패: %v", raw, err)
		}
		if info.OrderKey() <= prev {
			t.Errorf("%q: OrderKey=%d 가 직전 값 %d 보다 크지 않음", raw, info.OrderKey(), prev)
		}
		prev = info.OrderKey()
	}
}

func TestSemesterInfo_Sort(t *testing.T) {
	raws := []string{"2023-1", "2021-W", "2022-S", "2021-1"}
	infos := make([]SemesterInfo, 0, len(raws))
	for _, raw := range raws {
		info, _ := ParseSemesterInfo(raw)
		infos = append(infos, info)
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Before(infos[j]) })

	want := []string{"2021-1", "2021-W", "2022-S", "2023-1"}
	for i, w := range want {
		if infos[i].String() != w {
			t.Errorf("정렬 결과[%d]: 기대 %s, 실제 %s", i, w, infos[i].String())
		}
	}
}

func TestSemesterInfo_Equality(t *testing.T) {
	a, _ := ParseSemesterInfo("2023-S")
	b, _ := ParseSemesterInfo("2023-S")
	c, _ := ParseSemesterInfo("2023-W")

	if a != b {
		t.Error("같은 (연도, 학기코드) 쌍은 동일해야 함")
	}
	if a == c {
		t.Error("학기코드가 다르면 달라야 함")
	}
}
