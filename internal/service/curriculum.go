package service

// Curriculum 교육과정 상수 테이블. 교양 트랙 구성과 전공 접두어 매핑을 담는다.
// 전역에서 읽기 전용으로 공유되므로 생성 후 수정하지 않는다.
type Curriculum struct {
	geTracks      map[int][]string
	geTrackNames  map[int]string
	majorPrefix   map[string]string
	majorPrefixes []string
}

// DefaultCurriculum 서강대학교 교육과정 기준 Curriculum 생성
func DefaultCurriculum() *Curriculum {
	return &Curriculum{
		geTracks: map[int][]string{
			1: {"HFS2001", "HFS2002", "HFS2003", "HFU4012", "HFU4023"},
			2: {"ETS2001", "ETS2002", "ETS2004", "CHS2002", "CHS2003", "CHS2004", "HSS3032"},
			3: {"SHS2001", "SHS2002", "SHS2003", "SHS2007", "SHS2005"},
			4: {"STS2001", "STS2002", "STU4011", "STS2011", "STS2012", "STS2010", "STS2005", "STS2015"},
			5: {"COR1003", "LCS2001", "LCS2003", "LCS2005", "LCS2007", "LCU4021", "LCU4025", "LCU4030", "LCU4035", "LCU4105"},
		},
		geTrackNames: map[int]string{
			1: "인간과 신앙",
			2: "인간과 사상",
			3: "인간과 사회",
			4: "인간과 과학&AI",
			5: "글로벌 언어",
		},
		majorPrefix: map[string]string{
			"수학":       "MAT",
			"물리학":      "PHY",
			"화학":       "CHM",
			"생명과학":     "BIO",
			"전자공학":     "EEE",
			"기계공학":     "MEE",
			"컴퓨터공학":    "CSE",
			"화공생명공학":   "CBE",
			"시스템반도체공학": "SSE",
			"인공지능학과":   "AIE",
			"경제학":      "ECO",
			"경영학":      "MGT",
			"교육문화":     "EDU",
		},
		majorPrefixes: []string{
			"MAT", "PHY", "CHM", "BIO", "EEE", "MEE", "CSE",
			"CBE", "SSE", "AIE", "ECO", "MGT", "EDU",
		},
	}
}

// TrackCount 교양 트랙 개수
func (c *Curriculum) TrackCount() int { return len(c.geTracks) }

// TrackCourses 해당 트랙의 과목 코드 목록
func (c *Curriculum) TrackCourses(track int) []string { return c.geTracks[track] }

// TrackName 해당 트랙의 표시 이름
func (c *Curriculum) TrackName(track int) string { return c.geTrackNames[track] }

// PrefixForMajor 전공 이름에 대응하는 과목 코드 접두어.
// 매핑에 없는 전공은 빈 문자열을 반환하며 어떤 과목과도 매칭되지 않는다.
func (c *Curriculum) PrefixForMajor(major string) string { return c.majorPrefix[major] }

// MajorPrefixes 전공 과목으로 간주하는 코드 접두어 전체 목록
func (c *Curriculum) MajorPrefixes() []string { return c.majorPrefixes }

// IsMajorCode 과목 코드가 전공 과목 접두어로 시작하는지 여부
func (c *Curriculum) IsMajorCode(code string) bool {
	if len(code) < 3 {
		return false
	}
	for _, p := range c.majorPrefixes {
		if len(code) >= len(p) && code[:len(p)] == p {
			return true
		}
	}
	return false
}
