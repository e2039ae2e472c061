// Package seed holds the bundled demo dataset: real creative profiles from
// tabb.cc plus a handful of sample projects and requests. The repositories
// load it on startup so the app is usable without any external data source.
package seed

import "github.com/alimgiray/crewmatch/internal/models"

// Collaborators returns the bundled collaborator profiles.
func Collaborators() []*models.Collaborator {
	return []*models.Collaborator{
		{
			ID:           "1",
			Name:         "Graciela Watson",
			Role:         "Director & Producer",
			Location:     "Bristol, United Kingdom",
			Bio:          "A TV professional with years making factual entertainment programmes and a strong desire to keep telling stories, dramatic or real.",
			Skills:       []string{"Director", "Producer", "Documentary Maker", "Scriptwriter", "Video Producer"},
			Rating:       4.8,
			Avatar:       "/avatars/graciela-watson.jpg",
			Availability: models.AvailabilityAvailable,
			Experience:   "Professional",
			Portfolio:    12,
			ProfileURL:   "https://tabb.cc/graciela-watson",
		},
		{
			ID:           "2",
			Name:         "Shannon R. Hammond",
			Role:         "Producer",
			Location:     "Southampton, United Kingdom",
			Bio:          "Shannon's keen eye for detail and innovative approach guarantee that every project she undertakes will be of the highest quality.",
			Skills:       []string{"Producer", "Content Creation", "Project Management", "Narrative Development"},
			Rating:       4.9,
			Avatar:       "/avatars/shannon-hammond.jpg",
			Availability: models.AvailabilityAvailable,
			Experience:   "Professional",
			Portfolio:    8,
			ProfileURL:   "https://tabb.cc/shannon-hammond",
		},
		{
			ID:           "3",
			Name:         "Sean Bailey",
			Role:         "Director & Writer",
			Location:     "Bristol, United Kingdom",
			Bio:          "Sean Bailey is an independent director based in the South West, currently working on a feature, Finnegans Puddle. Trained at the Royal Central School Of Speech and Drama.",
			Skills:       []string{"Director", "Writer", "Actor", "Sound Designer", "Feature Films"},
			Rating:       4.7,
			Avatar:       "/avatars/sean-bailey.jpg",
			Availability: models.AvailabilityBusy,
			Experience:   "Professional",
			Portfolio:    15,
			ProfileURL:   "https://tabb.cc/sean-bailey",
		},
		{
			ID:           "4",
			Name:         "Lux Goldman",
			Role:         "DoP & Gaffer",
			Location:     "Bristol/Newport/Cardiff/London, United Kingdom",
			Bio:          "Non-binary DOP & Gaffer, looking to build up my portfolio. Especially interested in sci-fi & queer stories. Owner-operator with C70 & BMPCC6k Pro.",
			Skills:       []string{"DoP", "Aerial Cinematographer", "Grip", "Gaffer", "Cinematography", "Sci-Fi Specialist"},
			Rating:       4.6,
			Avatar:       "/avatars/lux-goldman.jpg",
			Availability: models.AvailabilityAvailable,
			Experience:   "Emerging",
			Portfolio:    6,
			ProfileURL:   "https://tabb.cc/lux",
		},
		{
			ID:           "5",
			Name:         "Ashley Porciuncula",
			Role:         "Director & Producer",
			Location:     "Bristol/London, United Kingdom",
			Bio:          "Ashley Porciuncula is a Californian-born filmmaker, director, producer, and digital consultant. She is passionate about storytelling, gamification psychology.",
			Skills:       []string{"Director", "Producer", "Executive Producer", "Digital Strategy", "Storytelling"},
			Rating:       4.8,
			Avatar:       "/avatars/ashley-porciuncula.jpg",
			Availability: models.AvailabilityAvailable,
			Experience:   "Professional",
			Portfolio:    20,
			ProfileURL:   "https://tabb.cc/ashley-porciuncula",
		},
		{
			ID:           "6",
			Name:         "Bashart Malik",
			Role:         "Director & DOP",
			Location:     "Bristol, United Kingdom",
			Bio:          "Over 15 years of experience as a Director and DOP in commercials, music videos and features. With a special passion for crafting imaginative visuals using narrative and light.",
			Skills:       []string{"Director", "Director Of Photography", "Cinematography", "Visual Storytelling", "Commercials", "Music Videos"},
			Rating:       4.9,
			Avatar:       "/avatars/bashart-malik.jpg",
			Availability: models.AvailabilityBusy,
			Experience:   "Professional",
			Portfolio:    25,
			ProfileURL:   "https://tabb.cc/bashart-malik",
		},
		{
			ID:           "7",
			Name:         "Oliver Park",
			Role:         "Horror Director & Writer",
			Location:     "Bristol, United Kingdom",
			Bio:          "I strive to innovate in the horror genre, and to leave audiences eagerly dreading what's next.",
			Skills:       []string{"Director", "Writer", "Horror Specialist", "Genre Filmmaking", "Thriller"},
			Rating:       4.5,
			Avatar:       "/avatars/oliver-park.jpg",
			Availability: models.AvailabilityAvailable,
			Experience:   "Professional",
			Portfolio:    10,
			ProfileURL:   "https://tabb.cc/oliver-park",
		},
		{
			ID:           "8",
			Name:         "Tom Brereton Downs",
			Role:         "Director & Producer",
			Location:     "Bath, United Kingdom",
			Bio:          "Tom loves to support people in uncovering and showing off their particular brand of brilliance. Founder of Screenology, Bristol's innovative Creative Filmmaking Degree programme.",
			Skills:       []string{"Director", "Producer", "Editor", "Filmmaker", "Education", "Creative Coaching"},
			Rating:       4.7,
			Avatar:       "/avatars/tom-brereton-downs.jpg",
			Availability: models.AvailabilityAvailable,
			Experience:   "Professional",
			Portfolio:    18,
			ProfileURL:   "https://tabb.cc/tom-brereton-downs",
		},
		{
			ID:           "9",
			Name:         "Aron Weston",
			Role:         "Filmmaker & Photographer",
			Location:     "Bristol/Pembrokeshire, United Kingdom",
			Bio:          "22 year old filmmaker specialising in Writing, Directing, Cinematography and Photography.",
			Skills:       []string{"Director", "Screenwriter", "Videographer", "DoP", "Photographer", "Young Talent"},
			Rating:       4.4,
			Avatar:       "/avatars/aron-weston.jpg",
			Availability: models.AvailabilityAvailable,
			Experience:   "Emerging",
			Portfolio:    5,
			ProfileURL:   "https://tabb.cc/aron-weston",
		},
		{
			ID:           "10",
			Name:         "Corey William Price",
			Role:         "Independent Filmmaker",
			Location:     "Bristol/Bath, United Kingdom",
			Bio:          "Bristol-based filmmaker. Directing, producing and writing my own films - always open to collaborate.",
			Skills:       []string{"Director", "Scriptwriter", "Producer", "Independent Films"},
			Rating:       4.6,
			Avatar:       "/avatars/corey-william-price.jpg",
			Availability: models.AvailabilityAvailable,
			Experience:   "Professional",
			Portfolio:    9,
			ProfileURL:   "https://tabb.cc/corey",
		},
		{
			ID:           "11",
			Name:         "Sylvia Clegg",
			Role:         "Experienced Actor & Singer",
			Location:     "Chippenham, United Kingdom",
			Bio:          "I've been acting almost all my life and involved in the film industry for 30+ years. Always looking for new people to collaborate with.",
			Skills:       []string{"Actor", "Singer", "Performance", "Veteran Talent", "Musical Theatre"},
			Rating:       4.8,
			Avatar:       "/avatars/sylvia-clegg.jpg",
			Availability: models.AvailabilityAvailable,
			Experience:   "Professional",
			Portfolio:    30,
			ProfileURL:   "https://tabb.cc/sylvia-clegg",
		},
		{
			ID:           "12",
			Name:         "René Adams",
			Role:         "Actor & Stunt Performer",
			Location:     "Gloucester, United Kingdom",
			Bio:          "Trainee SPACT and SA with martial arts background.",
			Skills:       []string{"Actor", "Supporting Artist", "Co-Writer", "Martial Arts", "Stunts"},
			Rating:       4.3,
			Avatar:       "/avatars/rene-adams.jpg",
			Availability: models.AvailabilityAvailable,
			Experience:   "Emerging",
			Portfolio:    3,
			ProfileURL:   "https://tabb.cc/rene-adams",
		},
		{
			ID:           "13",
			Name:         "Paul Llewellyn",
			Role:         "Writer/Director",
			Location:     "Bristol, United Kingdom",
			Bio:          "Writer/director of a few still imaginary films.",
			Skills:       []string{"Director", "Videographer", "Editor", "Creative Writing"},
			Rating:       4.2,
			Avatar:       "/avatars/paul-llewellyn.jpg",
			Availability: models.AvailabilityAvailable,
			Experience:   "Emerging",
			Portfolio:    2,
			ProfileURL:   "https://tabb.cc/paul-llewellyn",
		},
		{
			ID:           "14",
			Name:         "George Salt",
			Role:         "Writer & Producer",
			Location:     "Bristol, United Kingdom",
			Bio:          "Writer, Producer, Self shooting PD.",
			Skills:       []string{"Writer", "Producer", "Director", "Self-Shooting", "Production"},
			Rating:       4.5,
			Avatar:       "/avatars/george-salt.jpg",
			Availability: models.AvailabilityBusy,
			Experience:   "Professional",
			Portfolio:    11,
			ProfileURL:   "https://tabb.cc/george-salt",
		},
		{
			ID:           "15",
			Name:         "Maximillian Ian McCall",
			Role:         "Assistant Director",
			Location:     "Hindhead, United Kingdom",
			Bio:          "You know what they say, when life gives you lemons, you make a film about lemons",
			Skills:       []string{"Director", "Production Runner", "3rd Assistant Director", "2nd Assistant Director", "1st Assistant Director"},
			Rating:       4.4,
			Avatar:       "/avatars/maximillian-ian-mccall.jpg",
			Availability: models.AvailabilityAvailable,
			Experience:   "Professional",
			Portfolio:    7,
			ProfileURL:   "https://tabb.cc/maximillian-ian-mccall",
		},
		{
			ID:           "16",
			Name:         "Judith Hutchins",
			Role:         "Actor & Presenter",
			Location:     "Bath/Bristol, United Kingdom",
			Bio:          "Previous acting experience confined to theatre, but have worked as a presenter and director in TV. I'm new to film but keen to do more.",
			Skills:       []string{"Actor", "Presenter", "Theatre", "TV Experience"},
			Rating:       4.3,
			Avatar:       "/avatars/judith-hutchins.jpg",
			Availability: models.AvailabilityAvailable,
			Experience:   "Professional",
			Portfolio:    8,
			ProfileURL:   "https://tabb.cc/judith-hutchins",
		},
	}
}

// Projects returns the bundled sample projects.
func Projects() []*models.Project {
	return []*models.Project{
		{
			ID:            "1",
			Title:         "Indie Horror Short",
			Type:          models.ProjectTypeShortFilm,
			Description:   "A psychological horror short exploring themes of isolation and paranoia in a remote cabin setting.",
			Budget:        "1k-5k",
			Timeline:      "2-3-months",
			LookingFor:    []string{"Cinematographer", "Sound Engineer", "Editor"},
			Status:        models.ProjectStatusActive,
			Collaborators: 3,
			Requests:      12,
			Deadline:      "2024-02-15",
			CreatedBy:     "user-1",
			CreatedAt:     "2024-01-10",
		},
		{
			ID:            "2",
			Title:         "Music Video Concept",
			Type:          models.ProjectTypeMusicVideo,
			Description:   "Experimental music video with surreal visuals and creative cinematography for an indie rock band.",
			Budget:        "5k-10k",
			Timeline:      "1-month",
			LookingFor:    []string{"Director", "VFX Artist", "Choreographer"},
			Status:        models.ProjectStatusRecruiting,
			Collaborators: 1,
			Requests:      8,
			Deadline:      "2024-03-01",
			CreatedBy:     "user-1",
			CreatedAt:     "2024-01-15",
		},
		{
			ID:            "3",
			Title:         "Documentary: Local Artists",
			Type:          models.ProjectTypeDocumentary,
			Description:   "Feature-length documentary following three local artists as they prepare for a major exhibition.",
			Budget:        "10k+",
			Timeline:      "6-months+",
			LookingFor:    []string{"Producer", "Sound Recordist", "Editor"},
			Status:        models.ProjectStatusRecruiting,
			Collaborators: 2,
			Requests:      15,
			Deadline:      "2024-08-01",
			CreatedBy:     "user-2",
			CreatedAt:     "2024-01-05",
		},
		{
			ID:            "4",
			Title:         "Sci-Fi Short Film",
			Type:          models.ProjectTypeShortFilm,
			Description:   "A thought-provoking sci-fi short about AI consciousness, perfect for festival submissions.",
			Budget:        "5k-10k",
			Timeline:      "3-4-months",
			LookingFor:    []string{"DoP", "VFX Artist", "Sound Designer"},
			Status:        models.ProjectStatusActive,
			Collaborators: 2,
			Requests:      18,
			Deadline:      "2024-04-01",
			CreatedBy:     "user-3",
			CreatedAt:     "2024-01-08",
		},
		{
			ID:            "5",
			Title:         "Commercial Campaign",
			Type:          models.ProjectTypeCommercial,
			Description:   "Series of commercials for a sustainable fashion brand, focusing on authentic storytelling.",
			Budget:        "10k+",
			Timeline:      "2-months",
			LookingFor:    []string{"Director", "Producer", "Cinematographer"},
			Status:        models.ProjectStatusRecruiting,
			Collaborators: 1,
			Requests:      22,
			Deadline:      "2024-03-15",
			CreatedBy:     "user-4",
			CreatedAt:     "2024-01-12",
		},
		{
			ID:            "6",
			Title:         "Theatre Documentary",
			Type:          models.ProjectTypeDocumentary,
			Description:   "Behind-the-scenes documentary following a local theatre company's production process.",
			Budget:        "1k-5k",
			Timeline:      "4-months",
			LookingFor:    []string{"Videographer", "Editor", "Sound Recordist"},
			Status:        models.ProjectStatusActive,
			Collaborators: 1,
			Requests:      9,
			Deadline:      "2024-05-01",
			CreatedBy:     "user-5",
			CreatedAt:     "2024-01-18",
		},
	}
}

// Requests returns the bundled sample collaboration requests.
func Requests() []*models.CollaborationRequest {
	return []*models.CollaborationRequest{
		{
			ID:             "1",
			ProjectID:      "1",
			CollaboratorID: "3",
			Message:        "I'd love to work on this horror project. My experience with atmospheric cinematography and sound design would be perfect for creating the eerie mood you're looking for.",
			Status:         models.RequestStatusPending,
			CreatedAt:      "2024-01-12",
			Collaborator:   &models.CollaboratorSnapshot{ID: "3", Name: "Sean Bailey", Role: "Director & Writer", Avatar: "/avatars/sean-bailey.jpg", Rating: 4.7},
			Project:        &models.ProjectSnapshot{ID: "1", Title: "Indie Horror Short", Type: "short-film"},
			Type:           models.RequestDirectionReceived,
		},
		{
			ID:             "2",
			ProjectID:      "2",
			CollaboratorID: "6",
			Message:        "This music video concept sounds amazing! I have extensive experience with music videos and creative visual storytelling. I'd love to bring this vision to life.",
			Status:         models.RequestStatusPending,
			CreatedAt:      "2024-01-16",
			Collaborator:   &models.CollaboratorSnapshot{ID: "6", Name: "Bashart Malik", Role: "Director & DOP", Avatar: "/avatars/bashart-malik.jpg", Rating: 4.9},
			Project:        &models.ProjectSnapshot{ID: "2", Title: "Music Video Concept", Type: "music-video"},
			Type:           models.RequestDirectionReceived,
		},
		{
			ID:             "3",
			ProjectID:      "1",
			CollaboratorID: "4",
			Message:        "I'm particularly interested in sci-fi and genre stories. Your horror short sounds like a great opportunity to experiment with lighting and create atmosphere.",
			Status:         models.RequestStatusPending,
			CreatedAt:      "2024-01-14",
			Collaborator:   &models.CollaboratorSnapshot{ID: "4", Name: "Lux Goldman", Role: "DoP & Gaffer", Avatar: "/avatars/lux-goldman.jpg", Rating: 4.6},
			Project:        &models.ProjectSnapshot{ID: "1", Title: "Indie Horror Short", Type: "short-film"},
			Type:           models.RequestDirectionReceived,
		},
		{
			ID:             "4",
			ProjectID:      "4",
			CollaboratorID: "7",
			Message:        "This sci-fi concept aligns perfectly with my horror background. I'd love to explore the psychological aspects of AI consciousness.",
			Status:         models.RequestStatusPending,
			CreatedAt:      "2024-01-18",
			Collaborator:   &models.CollaboratorSnapshot{ID: "7", Name: "Oliver Park", Role: "Horror Director & Writer", Avatar: "/avatars/oliver-park.jpg", Rating: 4.5},
			Project:        &models.ProjectSnapshot{ID: "4", Title: "Sci-Fi Short Film", Type: "short-film"},
			Type:           models.RequestDirectionReceived,
		},
		{
			ID:             "5",
			ProjectID:      "5",
			CollaboratorID: "2",
			Message:        "I'm passionate about sustainable fashion and authentic storytelling. This commercial campaign sounds like a perfect fit for my skills.",
			Status:         models.RequestStatusPending,
			CreatedAt:      "2024-01-20",
			Collaborator:   &models.CollaboratorSnapshot{ID: "2", Name: "Shannon R. Hammond", Role: "Producer", Avatar: "/avatars/shannon-hammond.jpg", Rating: 4.9},
			Project:        &models.ProjectSnapshot{ID: "5", Title: "Commercial Campaign", Type: "commercial"},
			Type:           models.RequestDirectionReceived,
		},
	}
}
