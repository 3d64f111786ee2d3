package rules

// PhraseRule pairs a literal phrase with the explanation emitted when it
// is found in posting text.
type PhraseRule struct {
	Phrase string
	Reason string
}

// SalaryRange holds the plausible (min, max) bounds per pay period for
// one experience level. Amounts are INR; CTC bounds are in LPA.
type SalaryRange struct {
	MonthlyMin, MonthlyMax float64
	AnnualMin, AnnualMax   float64
	HourlyMin, HourlyMax   float64
	DailyMin, DailyMax     float64
	WeeklyMin, WeeklyMax   float64
	CTCLPAMin, CTCLPAMax   float64
}

// Ruleset is the full set of static configuration tables the detectors
// run against. It is immutable after construction: one process-wide
// instance is built at startup and shared by every request with no
// locking. Tests substitute smaller fixtures.
type Ruleset struct {
	Version string

	FreeEmailDomains         map[string]struct{}
	SuspiciousTLDs           []string
	SuspiciousDomainKeywords []string

	ScamPhrases   []PhraseRule // full phrase table, enhanced path
	ScamKeywords  []PhraseRule // higher-signal keywords, always critical
	LegacyPhrases []PhraseRule // smaller table used on the basic path

	FakeContactNumbers []string

	// Red-flag density category vocabularies.
	UrgencyTerms       []string
	PaymentTerms       []string
	UnrealisticTerms   []string
	CommunicationTerms []string

	// Basic-path urgency / vagueness vocabularies.
	UrgencyKeywords []string
	VagueTerms      []string

	PaymentKeywords   []string
	ResponseTimeTerms []string

	SpellAllowList map[string]struct{}

	SalaryRanges map[ExperienceLevel]SalaryRange
}

// DefaultRuleset returns the production tables.
func DefaultRuleset() *Ruleset {
	return &Ruleset{
		Version: "v2",

		FreeEmailDomains: stringSet(
			"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "rediffmail.com",
			"ymail.com", "live.com", "msn.com", "aol.com", "mail.com", "protonmail.com",
			"tutanota.com", "zoho.com", "icloud.com", "me.com", "mac.com",
		),

		SuspiciousTLDs: []string{
			".tk", ".ml", ".ga", ".cf", ".gq", ".xyz", ".top", ".click", ".download",
			".stream", ".science", ".date", ".faith", ".accountant", ".loan", ".win",
			".cricket", ".review", ".trade", ".racing", ".party", ".bid", ".country",
		},

		SuspiciousDomainKeywords: []string{
			"job", "career", "recruit", "hiring", "work", "employment", "vacancy",
			"jobsearch", "quickjob", "easyjob", "fastjob", "earnmoney", "makemoney",
			"workfromhome", "onlinejob", "parttime", "freelance",
		},

		ScamPhrases: []PhraseRule{
			{"no experience needed", "Legitimate jobs typically require some qualifications or skills"},
			{"no skills required", "All legitimate jobs require some form of skill or competency"},
			{"earn money fast", "Get-rich-quick schemes are common scam indicators"},
			{"quick money", "Promises of quick earnings are typically fraudulent"},
			{"easy money", `Legitimate work requires effort and is rarely "easy"`},
			{"work from home guaranteed", "Guarantees of remote work are often misleading"},
			{"immediate hiring", "Instant hiring without proper process is suspicious"},
			{"urgent hiring", "Excessive urgency can indicate pressure tactics"},
			{"no interview needed", "Legitimate employers always conduct some form of screening"},
			{"direct selection", "Skipping selection process is unprofessional"},
			{"advance payment required", "Legitimate employers never ask for upfront fees"},
			{"registration fee", "Job seekers should never pay registration fees"},
			{"training fee", "Employers should provide free training, not charge for it"},
			{"security deposit", "Legitimate jobs do not require security deposits from employees"},
			{"processing fee", "Processing fees are red flags for job scams"},
			{"earn daily", "Daily earning promises are often associated with scams"},
			{"high salary for freshers", "Unrealistic salary promises for entry-level positions"},
			{"no background check", "Legitimate employers conduct proper background verification"},
			{"copy paste job", "Copy-paste jobs are commonly used in data entry scams"},
			{"data entry from home", "Home-based data entry jobs are frequently fraudulent"},
			{"typing job", "Online typing jobs are often scams targeting job seekers"},
			{"form filling job", "Form filling jobs are commonly used in online scams"},
			{"email processing", "Email processing jobs are typically fraudulent schemes"},
			{"ad posting job", "Ad posting jobs are often pyramid or MLM schemes"},
			{"survey job", "Online survey jobs rarely provide legitimate income"},
			{"click job", "Paid-to-click jobs are often scams or provide minimal income"},
			{"captcha solving", "Captcha solving jobs typically pay extremely low wages"},
			{"sms job", "SMS-based jobs are often part of fraudulent schemes"},
			{"whatsapp job", "WhatsApp-based job offers are commonly scams"},
			{"telegram job", "Telegram job channels often promote fraudulent opportunities"},
			{"facebook job", "Social media job offers are frequently unverified"},
			{"instagram job", "Instagram job promotions are often misleading"},
			{"youtube job", "YouTube-promoted jobs are frequently scams"},
			{"tiktok job", "TikTok job offers are often unverified or fraudulent"},
			{"mobile job", "Mobile-only jobs without proper company backing are suspicious"},
			{"android job", "Platform-specific job claims without verification are suspicious"},
			{"iphone job", "Device-specific job requirements are often misleading"},
			{"part time guaranteed", "Guarantees of part-time work are often false promises"},
			{"flexible timing guaranteed", "Guaranteed flexibility without requirements is suspicious"},
			{"weekend job guaranteed", "Weekend job guarantees without screening are suspicious"},
			{"student job easy", "Easy jobs specifically targeting students are often scams"},
			{"housewife job", "Jobs specifically targeting housewives are often exploitative"},
			{"retired person job", "Jobs targeting specific demographics can be predatory"},
			{"disabled person job", "Targeting vulnerable populations is a common scam tactic"},
			{"unemployed guaranteed job", "Guaranteed employment without qualifications is unrealistic"},
			{"100% job guarantee", "No legitimate employer can guarantee 100% job placement"},
			{"money back guarantee", "Money back guarantees in job offers are red flags"},
			{"risk free job", "No job is completely risk-free, such claims are misleading"},
			{"government approved", "False government endorsements are common in scams"},
			{"ministry approved", "Fake government approvals are used to gain credibility"},
			{"iso certified company", "False certifications are often claimed by scam companies"},
			{"international company", "Vague international company claims without verification"},
			{"multinational opportunity", "Unverified multinational claims are often false"},
			{"global company hiring", "Global hiring claims without proper company details"},
			{"fortune 500 company", "False Fortune 500 affiliations are common lies"},
			{"startup opportunity", "Vague startup opportunities without clear details"},
			{"unicorn company", "False unicorn company affiliations to attract candidates"},
			{"funded startup", "Unverified funding claims are often false"},
			{"ipo bound company", "False IPO claims to create urgency and credibility"},
			{"pre ipo opportunity", "Pre-IPO job claims are often misleading"},
			{"equity offered", "Unverified equity offers in job postings are suspicious"},
			{"stock options guaranteed", "Stock option guarantees without proper documentation"},
			{"profit sharing guaranteed", "Profit sharing promises without proper contracts"},
			{"bonus guaranteed", "Guaranteed bonuses without performance metrics are suspicious"},
			{"incentive guaranteed", "Guaranteed incentives without clear terms are red flags"},
		},

		ScamKeywords: []PhraseRule{
			{"fake", `Direct mention of "fake" indicates potential scam content`},
			{"scam", `Direct mention of "scam" indicates potential fraudulent content`},
			{"fraud", `Direct mention of "fraud" indicates potential illegal activity`},
			{"cheat", `Direct mention of "cheat" indicates potential dishonest practices`},
			{"urgent", "Urgent language creates pressure and is common in scams"},
			{"immediate join", "Immediate joining requirements are pressure tactics"},
			{"immediate hiring", "Immediate hiring without proper process is suspicious"},
			{"immediate start", "Immediate start requirements are often scam indicators"},
			{"join today", "Same-day joining requirements are unrealistic"},
			{"start today", "Same-day start requirements are unrealistic"},
			{"limited vacancy", "Limited vacancy claims create false urgency"},
			{"only few seats", "Limited seats claims create artificial scarcity"},
			{"hurry up", "Hurry up language is a pressure tactic"},
			{"act fast", "Act fast language creates unnecessary urgency"},
			{"limited time", "Limited time offers are pressure tactics"},
			{"offer expires", "Expiring offers create false urgency"},
			{"guaranteed job", "Job guarantees without proper process are unrealistic"},
			{"100% guarantee", "100% guarantees are unrealistic promises"},
			{"no rejection", "No rejection promises are unrealistic"},
			{"everyone selected", "Universal selection claims are false"},
			{"all will be hired", "Universal hiring claims are unrealistic"},
			{"advance payment", "Advance payments from job seekers are scam indicators"},
			{"registration fee", "Registration fees are red flags in job postings"},
			{"processing fee", "Processing fees should never be charged to applicants"},
			{"security deposit", "Security deposits from employees are inappropriate"},
			{"training fee", "Training fees should be covered by legitimate employers"},
			{"admin fee", "Administrative fees are red flags"},
			{"form fee", "Form fees are inappropriate charges"},
			{"verification fee", "Verification fees are scam indicators"},
			{"work from home guaranteed", "Guaranteed remote work is often misleading"},
			{"home based job guaranteed", "Guaranteed home-based work is suspicious"},
			{"no office work", "No office work claims can be misleading"},
			{"only mobile work", "Mobile-only work claims are often false"},
			{"whatsapp job", "WhatsApp-based jobs are commonly scams"},
			{"telegram work", "Telegram-based work is often fraudulent"},
			{"no experience needed", "No experience requirements are often unrealistic"},
			{"no skills required", "No skills requirements are suspicious"},
			{"no qualification needed", "No qualification requirements are red flags"},
			{"anyone can do", "Anyone can do claims are often false"},
			{"very easy work", "Very easy work claims are suspicious"},
			{"simple copy paste", "Copy-paste job claims are often scams"},
			{"no interview needed", "No interview processes are unprofessional"},
			{"direct selection", "Direct selection without process is suspicious"},
			{"selection guaranteed", "Selection guarantees are unrealistic"},
			{"no questions asked", "No questions asked policies are red flags"},
		},

		LegacyPhrases: []PhraseRule{
			{"work from home", "Work from home opportunities are commonly used in scams"},
			{"daily salary", "Daily salary payments are unusual for legitimate jobs"},
			{"advance payment", "Requests for advance payments are red flags"},
			{"immediate joining", "Urgent hiring requests can indicate scams"},
			{"urgent hiring", "Urgent hiring requests can indicate scams"},
			{"no experience needed", "Legitimate jobs typically require some qualifications"},
			{"high salary for freshers", "Exceptionally high salaries for freshers are suspicious"},
			{"earn money fast", "Get-rich-quick phrases are common in scams"},
			{"no interview needed", "Legitimate jobs always have some interview process"},
			{"part time job", "Part-time job scams are common"},
			{"data entry job", "Data entry jobs are frequently faked"},
			{"online job", "Online job scams are prevalent"},
			{"easy money", "Promises of easy money are red flags"},
			{"quick money", "Promises of quick money are red flags"},
			{"no skills required", "Legitimate jobs require some skills"},
			{"earn from home", "Earn from home opportunities are often scams"},
			{"immediate start", "Immediate start requests can indicate scams"},
			{"no background check", "Legitimate employers conduct background checks"},
			{"direct hiring", "Direct hiring without process is suspicious"},
			{"hiring now", "Urgent hiring language can indicate scams"},
			{"apply now", "Immediate application pressure is suspicious"},
			{"limited seats", "Artificial scarcity creates pressure"},
			{"offer expires", "Time pressure tactics are common in scams"},
			{"act fast", "Rush tactics are red flags"},
			{"last chance", "Pressure tactics indicate potential scams"},
			{"quick cash", "Promises of quick money are red flags"},
			{"guaranteed income", "Income guarantees are unrealistic"},
			{"passive income", "Passive income promises are often fake"},
			{"financial freedom", "Unrealistic financial promises are red flags"},
			{"registration fee", "Upfront fee requests are major red flags"},
			{"training fee", "Training fee requests indicate scams"},
			{"investment required", "Investment requirements are suspicious"},
			{"deposit needed", "Deposit requests are red flags"},
			{"dream job", "Overly appealing language is manipulative"},
			{"exclusive offer", "Exclusivity claims are often fake"},
			{"work online", "Vague online work descriptions are common in scams"},
			{"quick hiring", "Fast hiring processes may indicate scams"},
			{"no resume needed", "Legitimate jobs typically require resumes"},
			{"earn while learning", "Promises of earning while training are suspicious"},
			{"no qualifications needed", "Legitimate jobs typically require some qualifications"},
			{"work visa provided", "Visa promises without proper process are suspicious"},
			{"instant job", `No legitimate jobs are truly "instant"`},
			{"no experience necessary", "Most jobs require some relevant experience"},
		},

		FakeContactNumbers: []string{
			"1234567890", "9876543210", "0000000000", "1111111111", "9999999999",
		},

		UrgencyTerms:       []string{"urgent", "immediate", "hurry", "fast", "quick", "asap", "today", "now"},
		PaymentTerms:       []string{"fee", "payment", "deposit", "advance", "money", "pay", "charge", "cost"},
		UnrealisticTerms:   []string{"guarantee", "easy", "simple", "no experience", "anyone", "everyone", "100%"},
		CommunicationTerms: []string{"whatsapp", "telegram", "sms", "call now", "contact immediately"},

		UrgencyKeywords: []string{
			"urgent", "immediate", "apply now", "limited seats", "offer expires",
			"act fast", "last chance", "hurry", "immediate joining", "urgent hiring",
			"immediate start", "hiring now", "offer valid", "no interview needed",
			"quick hiring", "limited time", "apply immediately", "fast hiring",
			"join immediately", "urgent requirement", "immediate opening",
		},

		VagueTerms: []string{
			"work from home", "no experience needed", "freelance opportunity", "online job",
			"passive income", "financial freedom", "data entry job", "online work",
			"flexible work", "be your own boss", "work online", "earn from anywhere",
			"digital nomad", "remote opportunity", "work anytime", "location independent",
			"internet job", "home based", "virtual job", "online business",
		},

		PaymentKeywords: []string{
			"registration fee", "processing fee", "advance payment", "security deposit", "training fee",
		},

		ResponseTimeTerms: []string{"immediate", "within 24 hours", "urgent", "instant"},

		SpellAllowList: stringSet(
			"covid", "api", "sql", "html", "css", "javascript", "python", "java",
			"android", "ios", "app", "tech", "startup", "saas", "crm", "erp",
			"linkedin", "facebook", "instagram", "whatsapp", "gmail", "email",
			"internship", "freelance", "parttime", "fulltime", "wfh", "bpo", "kpo",
		),

		SalaryRanges: map[ExperienceLevel]SalaryRange{
			LevelFresher: {
				MonthlyMin: 15000, MonthlyMax: 50000,
				AnnualMin: 180000, AnnualMax: 600000,
				HourlyMin: 100, HourlyMax: 500,
				DailyMin: 500, DailyMax: 2000,
				WeeklyMin: 3500, WeeklyMax: 12000,
				CTCLPAMin: 2.0, CTCLPAMax: 8.0,
			},
			LevelMid: {
				MonthlyMin: 40000, MonthlyMax: 120000,
				AnnualMin: 480000, AnnualMax: 1440000,
				HourlyMin: 300, HourlyMax: 1000,
				DailyMin: 1500, DailyMax: 5000,
				WeeklyMin: 10000, WeeklyMax: 30000,
				CTCLPAMin: 6.0, CTCLPAMax: 18.0,
			},
			LevelSenior: {
				MonthlyMin: 80000, MonthlyMax: 300000,
				AnnualMin: 960000, AnnualMax: 3600000,
				HourlyMin: 600, HourlyMax: 2500,
				DailyMin: 3000, DailyMax: 12000,
				WeeklyMin: 20000, WeeklyMax: 75000,
				CTCLPAMin: 12.0, CTCLPAMax: 50.0,
			},
		},
	}
}

func stringSet(items ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, s := range items {
		set[s] = struct{}{}
	}
	return set
}
