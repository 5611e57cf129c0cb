package controller

import "riseacademy_backend/internals/features/news/dto"

// Static datasets served when the store errors or has no rows yet,
// mirroring what the site shipped before the CMS was populated.

func strPtr(s string) *string { return &s }

var fallbackNews = []dto.NewsEventResponse{
	{
		ID:       "1",
		Category: "news",
		Title:    "Rise Students Win National Science Competition",
		Excerpt:  "Our talented science team brought home the gold at the National Science Olympiad, showcasing exceptional research and innovation.",
		Content:  "Our talented science team brought home the gold at the National Science Olympiad, showcasing exceptional research and innovation. The students worked tirelessly for months, conducting experiments and analyzing data to present their findings. Their hard work paid off as they impressed the judges with their deep understanding of scientific principles and their ability to apply them to real-world problems. This victory is a testament to the dedication of our students and the quality of our science curriculum.",
		ImageURL: "https://images.unsplash.com/photo-1532094349884-543bc11b234d?w=600&q=80",
	},
	{
		ID:       "2",
		Category: "event",
		Title:    "Annual Winter Gala Raises Record Funds for Scholarships",
		Excerpt:  "Thanks to our generous community, this year's Winter Gala raised over $500,000 to support student scholarships.",
		Content:  "Thanks to our generous community, this year's Winter Gala raised over $500,000 to support student scholarships. The event was a huge success, with parents, alumni, and community members coming together to celebrate our school and support our students. The night featured performances by our student orchestra and choir, as well as a silent auction and paddle raise. We are incredibly grateful for the support of our community and look forward to using these funds to provide opportunities for deserving students.",
		ImageURL: "https://images.unsplash.com/photo-1540575467063-178a50c2df87?w=600&q=80",
	},
	{
		ID:       "3",
		Category: "announcement",
		Title:    "New STEM Center Opening Spring 2025",
		Excerpt:  "We're excited to announce the construction of our state-of-the-art STEM Innovation Center.",
		Content:  "We're excited to announce the construction of our state-of-the-art STEM Innovation Center. This new facility will provide our students with access to cutting-edge technology and resources, allowing them to explore their interests in science, technology, engineering, and math. The center will feature specialized labs for robotics, coding, and 3D printing, as well as collaborative workspaces for student projects. We believe that this investment in our facilities will help prepare our students for the challenges and opportunities of the future.",
		ImageURL: "https://images.unsplash.com/photo-1581092160562-40aa08e78837?w=600&q=80",
	},
}

var fallbackEvents = []dto.NewsEventResponse{
	{
		ID:            "e1",
		Category:      "event",
		Title:         "Open House for Prospective Families",
		EventDate:     strPtr("2025-01-15"),
		EventTime:     "10:00 AM",
		EventLocation: "Main Campus",
	},
	{
		ID:            "e2",
		Category:      "event",
		Title:         "Parent-Teacher Conference Week",
		EventDate:     strPtr("2025-01-20"),
		EventTime:     "9:00 AM",
		EventLocation: "All Classrooms",
	},
	{
		ID:            "e3",
		Category:      "event",
		Title:         "Spring Semester Registration Deadline",
		EventDate:     strPtr("2025-02-01"),
		EventTime:     "5:00 PM",
		EventLocation: "Admin Office",
	},
	{
		ID:            "e4",
		Category:      "event",
		Title:         "Valentine's Day Charity Concert",
		EventDate:     strPtr("2025-02-14"),
		EventTime:     "7:00 PM",
		EventLocation: "Auditorium",
	},
}
