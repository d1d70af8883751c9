package source

import "scholarship-feed/internal/scrape/model"

// Seed lists served when a live source is unavailable. Deadlines are kept as
// the free text the sources publish; the normalizer resolves them.

var aggregatorSeed = []model.RawListing{
	{
		Title:           "HDFC Bank Parivartan's ECSS Programme",
		ProviderText:    "HDFC Bank",
		AmountText:      "Up to INR 75,000",
		EligibilityText: "Students of Class 1 to 12, diploma, UG and PG courses with family income below INR 2.5 lakh",
		DeadlineText:    "31 Dec 2025",
		Link:            "https://www.buddy4study.com/page/hdfc-bank-parivartans-ecss-programme",
	},
	{
		Title:           "Kotak Kanya Scholarship",
		ProviderText:    "Kotak Education Foundation",
		AmountText:      "INR 1,50,000 per year",
		EligibilityText: "Meritorious girl students pursuing first-year professional graduation courses",
		DeadlineText:    "30 Nov 2025",
		Link:            "https://www.buddy4study.com/page/kotak-kanya-scholarship",
	},
	{
		Title:           "Reliance Foundation Undergraduate Scholarships",
		ProviderText:    "Reliance Foundation",
		AmountText:      "Up to INR 2,00,000",
		EligibilityText: "First-year undergraduate students in any stream with household income below INR 15 lakh",
		DeadlineText:    "45 days left",
		Link:            "https://www.buddy4study.com/page/reliance-foundation-scholarships",
	},
	{
		Title:           "Aditya Birla Capital Scholarship",
		ProviderText:    "Aditya Birla Capital Foundation",
		AmountText:      "Up to INR 60,000",
		EligibilityText: "Students in Class 9 to 12 and general or professional graduation courses",
		DeadlineText:    "15 Jan 2026",
		Link:            "https://www.buddy4study.com/page/aditya-birla-capital-scholarship",
	},
	{
		Title:           "Tata Capital Pankh Scholarship Programme",
		ProviderText:    "Tata Capital Limited",
		AmountText:      "Up to INR 12,000",
		EligibilityText: "Merit students in Class 11, 12, diploma and graduation with 60% marks in the previous exam",
		DeadlineText:    "2025-12-20",
		Link:            "https://www.buddy4study.com/page/tata-capital-pankh-scholarship",
	},
	{
		Title:           "L'Oréal India For Young Women In Science Scholarships",
		ProviderText:    "L'Oréal India",
		AmountText:      "INR 2,50,000",
		EligibilityText: "Young women who passed Class 12 in science and want to pursue graduation in science",
		DeadlineText:    "",
		Link:            "https://www.buddy4study.com/page/loreal-india-for-young-women-in-science-scholarships",
	},
	{
		Title:           "Sitaram Jindal Foundation Scholarship",
		ProviderText:    "Sitaram Jindal Foundation",
		AmountText:      "INR 500 to INR 3,200 per month",
		EligibilityText: "Students from Class 11 to postgraduate courses with a minimum marks criterion",
		DeadlineText:    "Always open",
		Link:            "https://www.buddy4study.com/page/sitaram-jindal-foundation-scholarship",
	},
	{
		Title:           "Fair & Lovely Foundation Scholarship for MBA",
		ProviderText:    "Glow & Lovely Careers",
		AmountText:      "Up to INR 1,00,000",
		EligibilityText: "Students enrolled in MBA and finance programmes",
		DeadlineText:    "10 days left",
		Link:            "https://www.buddy4study.com/page/glow-and-lovely-careers-scholarship",
	},
}

var internshipSeed = []model.RawListing{
	{
		Title:           "Software Development Internship",
		ProviderText:    "Razorpay",
		AmountText:      "₹ 40,000 /month",
		EligibilityText: "Duration: 6 Months | Location: Bangalore",
		DeadlineText:    "20 days",
		Link:            "https://internshala.com/internship/detail/software-development-internship-in-bangalore-at-razorpay",
	},
	{
		Title:           "Data Science Internship",
		ProviderText:    "Swiggy",
		AmountText:      "₹ 25,000 /month",
		EligibilityText: "Duration: 3 Months | Location: Work From Home",
		DeadlineText:    "15 Nov 2025",
		Link:            "https://internshala.com/internship/detail/data-science-internship-at-swiggy",
	},
	{
		Title:           "UI/UX Design Internship",
		ProviderText:    "Zomato",
		AmountText:      "₹ 15,000 /month",
		EligibilityText: "Duration: 2 Months | Location: Gurgaon",
		DeadlineText:    "",
		Link:            "https://internshala.com/internship/detail/ui-ux-design-internship-in-gurgaon-at-zomato",
	},
	{
		Title:           "Finance Internship",
		ProviderText:    "Groww",
		AmountText:      "₹ 20,000 /month",
		EligibilityText: "Duration: 3 Months | Location: Mumbai",
		DeadlineText:    "30 days",
		Link:            "https://internshala.com/internship/detail/finance-internship-in-mumbai-at-groww",
	},
	{
		Title:           "Content Writing Internship",
		ProviderText:    "Unacademy",
		AmountText:      "₹ 8,000 /month",
		EligibilityText: "Duration: 1 Month | Location: Work From Home",
		DeadlineText:    "5 Dec 2025",
		Link:            "https://internshala.com/internship/detail/content-writing-internship-at-unacademy",
	},
	{
		Title:           "Healthcare Research Internship",
		ProviderText:    "Practo",
		AmountText:      "",
		EligibilityText: "Duration: 2 Months | Location: Bangalore",
		DeadlineText:    "12 days",
		Link:            "https://internshala.com/internship/detail/healthcare-research-internship-at-practo",
	},
}

var governmentSeed = []model.RawListing{
	{
		Title:           "AICTE Pragati Scholarship for Girl Students",
		ProviderText:    "AICTE",
		AmountText:      "INR 50,000 per annum",
		EligibilityText: "Girl students pursuing technical degree courses",
		DeadlineText:    "",
		Link:            "https://scholarships.gov.in/public/schemeGuidelines/AICTE_Pragati.pdf",
	},
	{
		Title:           "AICTE Saksham Scholarship",
		ProviderText:    "AICTE",
		AmountText:      "INR 50,000 per annum",
		EligibilityText: "Specially-abled students pursuing technical degree or diploma courses",
		DeadlineText:    "31 Oct 2025",
		Link:            "https://scholarships.gov.in",
	},
	{
		Title:           "Post Matric Scholarship for Minorities",
		ProviderText:    "Ministry of Minority Affairs",
		AmountText:      "Up to INR 10,000 per annum",
		EligibilityText: "Minority community students from Class 11 to PhD with family income below INR 2 lakh",
		DeadlineText:    "30 Nov 2025",
		Link:            "https://scholarships.gov.in",
	},
	{
		Title:           "Central Sector Scheme of Scholarship for College and University Students",
		ProviderText:    "Department of Higher Education",
		AmountText:      "INR 12,000 to INR 20,000 per annum",
		EligibilityText: "Students above the 80th percentile in Class 12 pursuing undergraduate courses",
		DeadlineText:    "31 Oct 2025",
		Link:            "https://scholarships.gov.in",
	},
	{
		Title:           "Prime Minister's Scholarship Scheme for Central Armed Police Forces",
		ProviderText:    "Ministry of Home Affairs",
		AmountText:      "INR 30,000 to INR 36,000 per annum",
		EligibilityText: "Wards of CAPF and Assam Rifles personnel in professional degree courses",
		DeadlineText:    "",
		Link:            "https://scholarships.gov.in",
	},
	{
		Title:           "National Fellowship for Scheduled Caste Students",
		ProviderText:    "Ministry of Social Justice and Empowerment",
		AmountText:      "INR 37,000 per month",
		EligibilityText: "Scheduled Caste students pursuing MPhil or PhD in science, humanities and social sciences",
		DeadlineText:    "60 days",
		Link:            "https://scholarships.gov.in",
	},
}
