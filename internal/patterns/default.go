package patterns

// Default returns the production rule set. The tables are built once and
// treated as read-only; callers must not mutate them.
func Default() *RuleSet {
	rs := &RuleSet{
		IntentKeywords:   defaultIntentKeywords(),
		CategoryKeywords: defaultCategoryKeywords(),
		Disambiguation:   defaultDisambiguation(),
		Cooccurrence:     defaultCooccurrence(),
		Negation:         defaultNegation(),
		GoldenIndicators: defaultGoldenIndicators(),
		AntiPatterns:     defaultAntiPatterns(),
	}
	return rs
}

func defaultIntentKeywords() map[Intent]*KeywordTable {
	return map[Intent]*KeywordTable{
		IntentCommand: newTablePtr(
			[]string{"해줘", "해 줘", "해주세요", "만들어", "작성해", "수정해", "바꿔", "추가해", "삭제해", "지워", "실행해", "고쳐"},
			[]string{"make", "create", "write", "add", "remove", "delete", "implement", "generate", "build", "run", "update", "change"},
		),
		IntentQuestion: newTablePtr(
			[]string{"뭐야", "무엇", "뭔가요", "왜", "어떻게", "어디", "언제", "인가요", "일까요", "나요", "까요", "맞나"},
			[]string{"what", "why", "how", "when", "where", "which", "who", "does", "can you", "is there"},
		),
		IntentInstruction: newTablePtr(
			[]string{"단계", "순서대로", "절차", "먼저", "그 다음", "다음으로", "마지막으로", "규칙", "반드시", "항상"},
			[]string{"step", "first", "then", "next", "finally", "follow", "ensure", "must", "always", "never"},
		),
		IntentFeedback: newTablePtr(
			[]string{"안돼", "안되", "안 돼", "오류", "에러", "버그", "이상해", "느려", "깨져", "좋아", "잘돼", "잘 돼"},
			[]string{"error", "bug", "broken", "fails", "failed", "wrong", "slow", "crash", "works", "great"},
		),
		IntentContext: newTablePtr(
			[]string{"프로젝트", "환경", "배경", "현재", "상황", "참고로", "우리는", "저희는", "사용 중"},
			[]string{"project", "currently", "background", "context", "environment", "using", "our", "setup", "fyi"},
		),
		IntentClarification: newTablePtr(
			[]string{"무슨 뜻", "무슨뜻", "다시 설명", "이해가 안", "헷갈려", "헷갈리", "그게 뭐", "무슨 말"},
			[]string{"mean", "clarify", "confused", "elaborate", "rephrase", "in other words", "not sure what"},
		),
	}
}

func defaultCategoryKeywords() map[Category]*KeywordTable {
	return map[Category]*KeywordTable{
		CategoryBugFix: newTablePtr(
			[]string{"버그", "오류", "에러", "고쳐", "수정", "안돼", "안되", "크래시", "깨져", "죽어"},
			[]string{"bug", "fix", "error", "crash", "broken", "exception", "debug", "fails"},
		),
		CategoryFeature: newTablePtr(
			[]string{"기능", "추가", "새로운", "새 기능", "구현", "만들어", "지원"},
			[]string{"feature", "add", "implement", "new", "support", "create", "build"},
		),
		CategoryRefactor: newTablePtr(
			[]string{"리팩토링", "리팩터링", "개선", "정리", "구조 변경", "중복 제거", "깔끔하게"},
			[]string{"refactor", "cleanup", "restructure", "simplify", "improve", "extract", "rename"},
		),
		CategoryReview: newTablePtr(
			[]string{"리뷰", "검토", "봐줘", "봐 줘", "평가해", "피드백"},
			[]string{"review", "critique", "assess", "evaluate", "feedback", "look over"},
		),
		CategoryTesting: newTablePtr(
			[]string{"테스트", "검증", "단위 테스트", "통합 테스트", "커버리지", "목"},
			[]string{"test", "testing", "unit", "coverage", "mock", "assert", "spec"},
		),
		CategoryDocumentation: newTablePtr(
			[]string{"문서", "주석", "설명서", "독스", "리드미", "가이드 작성"},
			[]string{"document", "documentation", "readme", "comment", "docs", "docstring", "changelog"},
		),
		CategoryExplanation: newTablePtr(
			[]string{"설명해", "알려줘", "알려 줘", "가르쳐", "이해", "뭐야", "어떤 의미"},
			[]string{"explain", "understand", "teach", "describe", "walkthrough", "what does"},
		),
		CategoryTranslation: newTablePtr(
			[]string{"번역", "영어로", "한국어로", "한글로", "일본어로", "옮겨"},
			[]string{"translate", "translation", "korean", "english", "localize", "localization"},
		),
		CategorySummarization: newTablePtr(
			[]string{"요약", "정리해", "간단히", "줄여", "핵심만", "세 줄"},
			[]string{"summarize", "summary", "tldr", "condense", "shorten", "key points"},
		),
		CategoryAnalysis: newTablePtr(
			[]string{"분석", "비교", "조사", "원인", "성능", "측정", "왜 느린"},
			[]string{"analyze", "analysis", "compare", "investigate", "measure", "profile", "benchmark"},
		),
		CategoryPlanning: newTablePtr(
			[]string{"계획", "설계", "아키텍처", "로드맵", "전략", "어떻게 구성"},
			[]string{"plan", "design", "architecture", "roadmap", "strategy", "outline", "approach"},
		),
		CategoryWriting: newTablePtr(
			[]string{"글 써", "이메일", "메일 작성", "블로그", "초안", "작문", "문장"},
			[]string{"email", "blog", "draft", "article", "essay", "letter", "post"},
		),
	}
}

// defaultDisambiguation resolves keywords that legitimately belong to more
// than one category. Resolution order matters: the first cue that matches
// claims the bonus and stops evaluation for that rule.
func defaultDisambiguation() []DisambiguationRule {
	return []DisambiguationRule{
		{
			// "수정"/"fix" can mean repairing a defect or altering behavior.
			Keyword:     "수정",
			Conflicting: []Category{CategoryBugFix, CategoryFeature},
			Resolutions: []Resolution{
				{
					Cues:     newTable([]string{"버그", "오류", "에러", "안돼", "안되"}, []string{"bug", "error", "crash", "broken"}),
					Category: CategoryBugFix,
					Bonus:    2,
				},
				{
					Cues:     newTable([]string{"기능", "새로", "추가"}, []string{"feature", "new", "add"}),
					Category: CategoryFeature,
					Bonus:    2,
				},
			},
		},
		{
			Keyword:     "fix",
			Conflicting: []Category{CategoryBugFix, CategoryRefactor},
			Resolutions: []Resolution{
				{
					Cues:     newTable([]string{"버그", "오류", "에러"}, []string{"bug", "error", "crash", "exception", "fails"}),
					Category: CategoryBugFix,
					Bonus:    2,
				},
				{
					Cues:     newTable([]string{"구조", "정리", "중복"}, []string{"structure", "cleanup", "duplication", "style"}),
					Category: CategoryRefactor,
					Bonus:    1,
				},
			},
		},
		{
			// "정리" covers both tidying code and condensing text.
			Keyword:     "정리",
			Conflicting: []Category{CategoryRefactor, CategorySummarization},
			Resolutions: []Resolution{
				{
					Cues:     newTable([]string{"코드", "함수", "클래스", "파일"}, []string{"code", "function", "class", "module"}),
					Category: CategoryRefactor,
					Bonus:    2,
				},
				{
					Cues:     newTable([]string{"내용", "글", "문서"}, []string{"text", "notes", "article", "content"}),
					Category: CategorySummarization,
					Bonus:    2,
				},
			},
		},
		{
			// "설명" is explanation in chat but documentation when written down.
			Keyword:     "설명",
			Conflicting: []Category{CategoryExplanation, CategoryDocumentation},
			Resolutions: []Resolution{
				{
					Cues:     newTable([]string{"문서", "주석", "리드미"}, []string{"readme", "comment", "docs"}),
					Category: CategoryDocumentation,
					Bonus:    2,
				},
				{
					Cues:     newTable([]string{"이해", "개념", "원리"}, []string{"concept", "understand", "how it works"}),
					Category: CategoryExplanation,
					Bonus:    1,
				},
			},
		},
	}
}

func defaultCooccurrence() []CooccurrenceRule {
	return []CooccurrenceRule{
		{
			Keywords: []KeywordTable{
				newTable([]string{"테스트"}, []string{"test", "tests"}),
				newTable([]string{"작성", "만들어", "추가"}, []string{"write", "add", "create"}),
			},
			Category: CategoryTesting,
			Bonus:    2,
		},
		{
			Keywords: []KeywordTable{
				newTable([]string{"버그", "오류", "에러"}, []string{"bug", "error"}),
				newTable([]string{"고쳐", "수정", "잡아"}, []string{"fix", "resolve", "solve"}),
			},
			Category: CategoryBugFix,
			Bonus:    2,
		},
		{
			Keywords: []KeywordTable{
				newTable([]string{"문서", "주석", "리드미"}, []string{"readme", "docs", "documentation"}),
				newTable([]string{"작성", "추가", "업데이트"}, []string{"write", "add", "update"}),
			},
			Category: CategoryDocumentation,
			Bonus:    2,
		},
		{
			Keywords: []KeywordTable{
				newTable([]string{"아키텍처", "설계", "구조"}, []string{"architecture", "design"}),
				newTable([]string{"어떻게", "제안", "의견"}, []string{"how", "propose", "suggest", "approach"}),
			},
			Category: CategoryPlanning,
			Bonus:    1,
		},
		{
			Keywords: []KeywordTable{
				newTable([]string{"성능", "속도", "메모리"}, []string{"performance", "latency", "memory"}),
				newTable([]string{"분석", "측정", "원인"}, []string{"analyze", "measure", "profile", "investigate"}),
			},
			Category: CategoryAnalysis,
			Bonus:    2,
		},
	}
}

func defaultNegation() []NegationRule {
	return []NegationRule{
		{
			Markers: newTable([]string{"하지 마", "하지마", "하지 말"}, []string{"don't", "do not"}),
			Intents: []Intent{IntentCommand},
			Penalty: 0.3,
		},
		{
			Markers: newTable([]string{"절대 하지"}, []string{"never do", "must not"}),
			Intents: []Intent{IntentCommand, IntentInstruction},
			Penalty: 0.5,
		},
		{
			Markers: newTable([]string{"필요 없", "필요없"}, []string{"no need to", "not necessary"}),
			Intents: []Intent{IntentCommand},
			Penalty: 0.4,
		},
	}
}

// defaultGoldenIndicators maps each GOLDEN dimension to its keyword family.
// Dimension names match golden.Score field tags.
func defaultGoldenIndicators() map[string]*KeywordTable {
	return map[string]*KeywordTable{
		"goal": newTablePtr(
			[]string{"목표", "목적", "원하는", "하고 싶", "위해", "최종적으로"},
			[]string{"goal", "objective", "want", "need", "purpose", "achieve", "aim"},
		),
		"output": newTablePtr(
			[]string{"출력", "결과물", "형식", "포맷", "형태로", "결과는"},
			[]string{"output", "format", "result", "return", "produce", "deliverable", "respond with"},
		),
		"limits": newTablePtr(
			[]string{"제약", "제한", "조건", "하지 말", "금지", "범위", "만 사용"},
			[]string{"constraint", "limit", "must not", "avoid", "only", "scope", "boundary", "except"},
		),
		"data": newTablePtr(
			[]string{"데이터", "입력", "예시", "샘플", "참고", "아래 코드", "다음 코드"},
			[]string{"data", "input", "example", "sample", "given", "reference", "attached", "following"},
		),
		"evaluation": newTablePtr(
			[]string{"검증", "평가", "기준", "확인", "성공", "통과"},
			[]string{"verify", "validate", "criteria", "check", "measure", "success", "acceptance"},
		),
		"next": newTablePtr(
			[]string{"다음", "이후", "추가로", "후속", "그다음", "나중에"},
			[]string{"next", "then", "after", "follow-up", "afterwards", "later", "subsequently"},
		),
	}
}
