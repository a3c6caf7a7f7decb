package mcp

// The YouTube endpoint catalog. Every descriptor maps one MCP tool to one
// upstream REST operation; the dispatcher does the rest. Parameter sets
// mirror the upstream API reference for each endpoint.

// pathParam builds a required path placeholder parameter.
func pathParam(name, description string) CatalogParam {
	return CatalogParam{Name: name, Type: "string", Description: description, Required: true, In: "path"}
}

// queryParam builds an optional query parameter.
func queryParam(name, paramType, description string) CatalogParam {
	return CatalogParam{Name: name, Type: paramType, Description: description, In: "query"}
}

// ownerParam builds the onBehalfOfContentOwner parameter shared by the
// content-owner endpoints. Falls back to the configured content owner when
// the caller omits it.
func ownerParam() CatalogParam {
	return CatalogParam{
		Name:        "onBehalfOfContentOwner",
		Type:        "string",
		Description: "Content owner the request acts on behalf of.",
		In:          "query",
		DefaultFrom: "user_config.content_owner",
	}
}

// YouTubeCatalog returns the endpoint descriptors for every upstream
// operation this server exposes. Built once at startup; immutable afterwards.
func YouTubeCatalog() []CatalogTool {
	return []CatalogTool{
		{
			Name:        "get_jobs_job_reports",
			Description: "Retrieves the reports generated for a specific reporting job, filtered by creation time or start time range.",
			Method:      "GET",
			Path:        "/jobs/{jobId}/reports",
			Params: []CatalogParam{
				pathParam("jobId", "The ID of the job whose reports are listed."),
				queryParam("createdAfter", "string", "Only return reports created after this timestamp (ISO 8601)."),
				ownerParam(),
				queryParam("pageSize", "number", "Maximum number of reports to return per page."),
				queryParam("pageToken", "string", "Token identifying the page of results to return."),
				queryParam("startTimeAtOrAfter", "string", "Only return reports whose start time is at or after this timestamp (ISO 8601)."),
				queryParam("startTimeBefore", "string", "Only return reports whose start time is before this timestamp (ISO 8601)."),
			},
		},
		{
			Name:        "get_jobs_job_reports_report",
			Description: "Retrieves the metadata for a single report generated by a reporting job.",
			Method:      "GET",
			Path:        "/jobs/{jobId}/reports/{reportId}",
			Params: []CatalogParam{
				pathParam("jobId", "The ID of the job that generated the report."),
				pathParam("reportId", "The ID of the report to retrieve."),
				ownerParam(),
			},
		},
		{
			Name:        "delete_jobs_job",
			Description: "Deletes a reporting job.",
			Method:      "DELETE",
			Path:        "/jobs/{jobId}",
			Params: []CatalogParam{
				pathParam("jobId", "The ID of the job to delete."),
				ownerParam(),
			},
		},
		{
			Name:        "get_jobs",
			Description: "Lists the reporting jobs that have been scheduled for a channel or content owner.",
			Method:      "GET",
			Path:        "/jobs",
			Params: []CatalogParam{
				queryParam("includeSystemManaged", "boolean", "Whether to include system-managed jobs in the result."),
				ownerParam(),
				queryParam("pageSize", "number", "Maximum number of jobs to return per page."),
				queryParam("pageToken", "string", "Token identifying the page of results to return."),
			},
		},
		{
			Name:        "get_media_resource_name",
			Description: "Downloads a generated report identified by its media resource name.",
			Method:      "GET",
			Path:        "/media/{resourceName}",
			Params: []CatalogParam{
				pathParam("resourceName", "The resource name of the media to download."),
			},
		},
		{
			Name:        "get_reporttypes",
			Description: "Lists the report types that reporting jobs can be created for.",
			Method:      "GET",
			Path:        "/reportTypes",
			Params: []CatalogParam{
				queryParam("includeSystemManaged", "boolean", "Whether to include system-managed report types in the result."),
				ownerParam(),
				queryParam("pageSize", "number", "Maximum number of report types to return per page."),
				queryParam("pageToken", "string", "Token identifying the page of results to return."),
			},
		},
		{
			Name:        "delete_captions",
			Description: "Deletes a caption track.",
			Method:      "DELETE",
			Path:        "/captions",
			Params: []CatalogParam{
				queryParam("id", "string", "The ID of the caption track to delete."),
				queryParam("onBehalfOf", "string", "ID of the user the request is made on behalf of."),
				ownerParam(),
			},
		},
		{
			Name:        "get_captions",
			Description: "Lists the caption tracks associated with a video.",
			Method:      "GET",
			Path:        "/captions",
			Params: []CatalogParam{
				{Name: "videoId", Type: "string", Description: "The ID of the video whose caption tracks are listed.", Required: true, In: "query"},
				queryParam("id", "string", "Comma-separated caption track IDs to filter the result."),
				queryParam("onBehalfOf", "string", "ID of the user the request is made on behalf of."),
				ownerParam(),
				queryParam("part", "string", "Caption resource parts to include (id, snippet)."),
				queryParam("tfmt", "string", "Caption track format for downloads."),
				queryParam("tlang", "string", "ISO 639-1 language code to translate the caption track into."),
			},
		},
		{
			Name:        "delete_comments",
			Description: "Deletes a comment.",
			Method:      "DELETE",
			Path:        "/comments",
			Params: []CatalogParam{
				queryParam("id", "string", "The ID of the comment to delete."),
			},
		},
		{
			Name:        "add_comments_mark_as_spam",
			Description: "Flags one or more comments as spam.",
			Method:      "POST",
			Path:        "/comments/markAsSpam",
			Params: []CatalogParam{
				queryParam("id", "string", "Comma-separated IDs of the comments to mark as spam."),
			},
		},
		{
			Name:        "add_comments_set_moderation_status",
			Description: "Sets the moderation status of one or more comments, optionally banning the author.",
			Method:      "POST",
			Path:        "/comments/setModerationStatus",
			Params: []CatalogParam{
				queryParam("banAuthor", "boolean", "Whether to ban the comment author from the channel."),
				queryParam("id", "string", "Comma-separated IDs of the comments to moderate."),
				queryParam("moderationStatus", "string", "New moderation status (heldForReview, published, rejected)."),
			},
		},
		{
			Name:        "delete_live_broadcasts",
			Description: "Deletes a live broadcast.",
			Method:      "DELETE",
			Path:        "/liveBroadcasts",
			Params: []CatalogParam{
				queryParam("id", "string", "The ID of the broadcast to delete."),
				ownerParam(),
				queryParam("onBehalfOfContentOwnerChannel", "string", "Channel ID the content owner acts on behalf of."),
			},
		},
		{
			Name:        "add_live_broadcasts_bind",
			Description: "Binds a live broadcast to a video stream.",
			Method:      "POST",
			Path:        "/liveBroadcasts/bind",
			Params: []CatalogParam{
				queryParam("id", "string", "The ID of the broadcast to bind."),
				ownerParam(),
				queryParam("onBehalfOfContentOwnerChannel", "string", "Channel ID the content owner acts on behalf of."),
				queryParam("part", "string", "Broadcast resource parts to include in the response."),
				queryParam("streamId", "string", "The ID of the stream to bind the broadcast to."),
			},
		},
		{
			Name:        "add_live_broadcasts_control",
			Description: "Controls a live broadcast, such as displaying a slate at an offset or wall-clock time.",
			Method:      "POST",
			Path:        "/liveBroadcasts/control",
			Params: []CatalogParam{
				queryParam("displaySlate", "boolean", "Whether a slate is displayed."),
				queryParam("id", "string", "The ID of the broadcast to control."),
				queryParam("offsetTimeMs", "string", "Offset in milliseconds at which the action occurs."),
				ownerParam(),
				queryParam("onBehalfOfContentOwnerChannel", "string", "Channel ID the content owner acts on behalf of."),
				queryParam("part", "string", "Broadcast resource parts to include in the response."),
				queryParam("walltime", "string", "Wall-clock time at which the action occurs (ISO 8601)."),
			},
		},
		{
			Name:        "add_live_broadcasts_transition",
			Description: "Transitions a live broadcast to a new status (testing, live, complete).",
			Method:      "POST",
			Path:        "/liveBroadcasts/transition",
			Params: []CatalogParam{
				queryParam("broadcastStatus", "string", "Status the broadcast transitions to (testing, live, complete)."),
				queryParam("id", "string", "The ID of the broadcast to transition."),
				ownerParam(),
				queryParam("onBehalfOfContentOwnerChannel", "string", "Channel ID the content owner acts on behalf of."),
				queryParam("part", "string", "Broadcast resource parts to include in the response."),
			},
		},
		{
			Name:        "delete_live_chat_bans",
			Description: "Removes a ban from a live chat.",
			Method:      "DELETE",
			Path:        "/liveChat/bans",
			Params: []CatalogParam{
				queryParam("id", "string", "The ID of the ban to remove."),
			},
		},
		{
			Name:        "delete_live_chat_messages",
			Description: "Deletes a live chat message.",
			Method:      "DELETE",
			Path:        "/liveChat/messages",
			Params: []CatalogParam{
				queryParam("id", "string", "The ID of the message to delete."),
			},
		},
		{
			Name:        "delete_live_chat_moderators",
			Description: "Removes a moderator from a live chat.",
			Method:      "DELETE",
			Path:        "/liveChat/moderators",
			Params: []CatalogParam{
				queryParam("id", "string", "The ID of the moderator to remove."),
			},
		},
		{
			Name:        "delete_videos",
			Description: "Deletes a video.",
			Method:      "DELETE",
			Path:        "/videos",
			Params: []CatalogParam{
				queryParam("id", "string", "The ID of the video to delete."),
				ownerParam(),
			},
		},
		{
			Name:        "get_videos_get_rating",
			Description: "Retrieves the authorized user's rating for one or more videos.",
			Method:      "GET",
			Path:        "/videos/getRating",
			Params: []CatalogParam{
				queryParam("id", "string", "Comma-separated IDs of the videos to get ratings for."),
				ownerParam(),
			},
		},
		{
			Name:        "add_videos_rate",
			Description: "Adds a like or dislike rating to a video, or removes a rating.",
			Method:      "POST",
			Path:        "/videos/rate",
			Params: []CatalogParam{
				queryParam("id", "string", "The ID of the video to rate."),
				queryParam("rating", "string", "Rating to apply (like, dislike, none)."),
			},
		},
		{
			Name:        "add_videos_report_abuse",
			Description: "Reports a video for containing abusive content.",
			Method:      "POST",
			Path:        "/videos/reportAbuse",
			Params: []CatalogParam{
				ownerParam(),
			},
		},
		{
			Name:        "add_watermarks_set",
			Description: "Sets the watermark image shown during a channel's video playback.",
			Method:      "POST",
			Path:        "/watermarks/set",
			Params: []CatalogParam{
				queryParam("channelId", "string", "The ID of the channel the watermark applies to."),
				ownerParam(),
			},
		},
		{
			Name:        "add_watermarks_unset",
			Description: "Removes a channel's watermark image.",
			Method:      "POST",
			Path:        "/watermarks/unset",
			Params: []CatalogParam{
				queryParam("channelId", "string", "The ID of the channel whose watermark is removed."),
				ownerParam(),
			},
		},
		{
			Name:        "get_activities",
			Description: "Lists channel activity events matching the request criteria.",
			Method:      "GET",
			Path:        "/activities",
			Params: []CatalogParam{
				queryParam("channelId", "string", "Channel ID whose activities are listed."),
				queryParam("home", "boolean", "Whether to retrieve the authenticated user's home feed."),
				queryParam("maxResults", "number", "Maximum number of items to return per page."),
				queryParam("mine", "boolean", "Whether to list the authenticated user's activities."),
				queryParam("pageToken", "string", "Token identifying the page of results to return."),
				queryParam("part", "string", "Activity resource parts to include (snippet, contentDetails)."),
				queryParam("publishedAfter", "string", "Only return activities published after this timestamp (ISO 8601)."),
				queryParam("publishedBefore", "string", "Only return activities published before this timestamp (ISO 8601)."),
				queryParam("regionCode", "string", "ISO 3166-1 alpha-2 country code to localize results."),
			},
		},
		{
			Name:        "add_channel_banners_insert",
			Description: "Uploads a channel banner image to YouTube.",
			Method:      "POST",
			Path:        "/channelBanners/insert",
			Params: []CatalogParam{
				queryParam("channelId", "string", "The ID of the channel the banner belongs to."),
				ownerParam(),
			},
		},
		{
			Name:        "delete_channel_sections",
			Description: "Deletes a channel section.",
			Method:      "DELETE",
			Path:        "/channelSections",
			Params: []CatalogParam{
				queryParam("id", "string", "The ID of the channel section to delete."),
				ownerParam(),
			},
		},
		{
			Name:        "get_channels",
			Description: "Lists channel resources matching the request criteria.",
			Method:      "GET",
			Path:        "/channels",
			Params: []CatalogParam{
				queryParam("categoryId", "string", "Guide category ID to filter channels by."),
				queryParam("forUsername", "string", "YouTube username to look up a channel for."),
				queryParam("hl", "string", "Language code for localized resource metadata."),
				queryParam("id", "string", "Comma-separated channel IDs to retrieve."),
				queryParam("managedByMe", "boolean", "Whether to list channels managed by the content owner."),
				queryParam("maxResults", "number", "Maximum number of items to return per page."),
				queryParam("mine", "boolean", "Whether to list the authenticated user's channels."),
				queryParam("mySubscribers", "boolean", "Whether to list channels subscribed to the authenticated user."),
				ownerParam(),
				queryParam("pageToken", "string", "Token identifying the page of results to return."),
				queryParam("part", "string", "Channel resource parts to include (snippet, statistics, contentDetails)."),
			},
		},
		{
			Name:        "get_comment_threads",
			Description: "Lists comment threads matching the request criteria.",
			Method:      "GET",
			Path:        "/commentThreads",
			Params: []CatalogParam{
				queryParam("allThreadsRelatedToChannelId", "string", "Channel ID to list all associated comment threads for."),
				queryParam("channelId", "string", "Channel ID whose comment threads are listed."),
				queryParam("id", "string", "Comma-separated comment thread IDs to retrieve."),
				queryParam("maxResults", "number", "Maximum number of items to return per page."),
				queryParam("moderationStatus", "string", "Moderation status to filter threads by."),
				queryParam("order", "string", "Order of the returned threads (time, relevance)."),
				queryParam("pageToken", "string", "Token identifying the page of results to return."),
				queryParam("part", "string", "CommentThread resource parts to include (snippet, replies)."),
				queryParam("searchTerms", "string", "Restrict results to threads containing these search terms."),
				queryParam("textFormat", "string", "Format of returned comment text (html, plainText)."),
				queryParam("videoId", "string", "Video ID whose comment threads are listed."),
			},
		},
		{
			Name:        "get_fanfundingevents",
			Description: "Lists fan funding events for the authenticated user's channel.",
			Method:      "GET",
			Path:        "/fanFundingEvents",
			Params: []CatalogParam{
				queryParam("hl", "string", "Language code for localized resource metadata."),
				queryParam("maxResults", "number", "Maximum number of items to return per page."),
				queryParam("pageToken", "string", "Token identifying the page of results to return."),
				queryParam("part", "string", "FanFundingEvent resource parts to include."),
			},
		},
		{
			Name:        "get_guecategories",
			Description: "Lists the guide categories available on YouTube.",
			Method:      "GET",
			Path:        "/guideCategories",
			Params: []CatalogParam{
				queryParam("hl", "string", "Language code for localized category titles."),
				queryParam("id", "string", "Comma-separated guide category IDs to retrieve."),
				queryParam("part", "string", "GuideCategory resource parts to include."),
				queryParam("regionCode", "string", "ISO 3166-1 alpha-2 country code to list categories for."),
			},
		},
		{
			Name:        "get_languages",
			Description: "Lists the application languages the YouTube website supports.",
			Method:      "GET",
			Path:        "/i18nLanguages",
			Params: []CatalogParam{
				queryParam("hl", "string", "Language code for localized language names."),
				queryParam("part", "string", "I18nLanguage resource parts to include."),
			},
		},
		{
			Name:        "get_regions",
			Description: "Lists the content regions the YouTube website supports.",
			Method:      "GET",
			Path:        "/i18nRegions",
			Params: []CatalogParam{
				queryParam("hl", "string", "Language code for localized region names."),
				queryParam("part", "string", "I18nRegion resource parts to include."),
			},
		},
		{
			Name:        "delete_livestreams",
			Description: "Deletes a video stream.",
			Method:      "DELETE",
			Path:        "/liveStreams",
			Params: []CatalogParam{
				queryParam("id", "string", "The ID of the stream to delete."),
				ownerParam(),
				queryParam("onBehalfOfContentOwnerChannel", "string", "Channel ID the content owner acts on behalf of."),
			},
		},
		{
			Name:        "delete_play_list_items",
			Description: "Deletes a playlist item.",
			Method:      "DELETE",
			Path:        "/playlistItems",
			Params: []CatalogParam{
				queryParam("id", "string", "The ID of the playlist item to delete."),
				ownerParam(),
			},
		},
		{
			Name:        "delete_playlists",
			Description: "Deletes a playlist.",
			Method:      "DELETE",
			Path:        "/playlists",
			Params: []CatalogParam{
				queryParam("id", "string", "The ID of the playlist to delete."),
				ownerParam(),
			},
		},
		{
			Name:        "get_search",
			Description: "Searches YouTube for videos, channels, and playlists matching the query and filters.",
			Method:      "GET",
			Path:        "/search",
			Params: []CatalogParam{
				queryParam("channelId", "string", "Restrict results to a channel."),
				queryParam("channelType", "string", "Restrict results to a channel type (any, show)."),
				queryParam("eventType", "string", "Restrict results to broadcast events (completed, live, upcoming)."),
				queryParam("forContentOwner", "boolean", "Whether to restrict results to the content owner's videos."),
				queryParam("forDeveloper", "boolean", "Whether to restrict results to videos uploaded via the developer's application."),
				queryParam("forMine", "boolean", "Whether to restrict results to the authenticated user's videos."),
				queryParam("location", "string", "Geographic point (lat,lng) to search around."),
				queryParam("locationRadius", "string", "Radius around the location to include (e.g. 5km)."),
				queryParam("maxResults", "number", "Maximum number of items to return per page."),
				ownerParam(),
				queryParam("order", "string", "Order of the returned results (date, rating, relevance, title, videoCount, viewCount)."),
				queryParam("pageToken", "string", "Token identifying the page of results to return."),
				queryParam("part", "string", "Search resource parts to include (snippet)."),
				queryParam("publishedAfter", "string", "Only return resources created after this timestamp (ISO 8601)."),
				queryParam("publishedBefore", "string", "Only return resources created before this timestamp (ISO 8601)."),
				queryParam("q", "string", "The query term to search for."),
				queryParam("regionCode", "string", "ISO 3166-1 alpha-2 country code to localize results."),
				queryParam("relatedToVideoId", "string", "Video ID to find related videos for."),
				queryParam("relevanceLanguage", "string", "Language most relevant to the results."),
				queryParam("safeSearch", "string", "Restricted-content filtering level (moderate, none, strict)."),
				queryParam("topicId", "string", "Restrict results to a Freebase topic."),
				queryParam("type", "string", "Resource types to search (channel, playlist, video)."),
				queryParam("videoCaption", "string", "Filter by caption availability (any, closedCaption, none)."),
				queryParam("videoCategoryId", "string", "Restrict video results to a category."),
				queryParam("videoDefinition", "string", "Filter by definition (any, high, standard)."),
				queryParam("videoDimension", "string", "Filter by dimension (2d, 3d, any)."),
				queryParam("videoDuration", "string", "Filter by duration (any, long, medium, short)."),
				queryParam("videoEmbeddable", "string", "Restrict to embeddable videos (any, true)."),
				queryParam("videoLicense", "string", "Filter by license (any, creativeCommon, youtube)."),
				queryParam("videoSyndicated", "string", "Restrict to syndicated videos (any, true)."),
				queryParam("videoType", "string", "Filter by video type (any, episode, movie)."),
			},
		},
		{
			Name:        "get_sponsors",
			Description: "Lists the sponsors of the authenticated user's channel.",
			Method:      "GET",
			Path:        "/sponsors",
			Params: []CatalogParam{
				queryParam("filter", "string", "Restrict which sponsors are returned (all, newest)."),
				queryParam("maxResults", "number", "Maximum number of items to return per page."),
				queryParam("pageToken", "string", "Token identifying the page of results to return."),
				queryParam("part", "string", "Sponsor resource parts to include."),
			},
		},
		{
			Name:        "delete_subscriptions",
			Description: "Deletes a subscription.",
			Method:      "DELETE",
			Path:        "/subscriptions",
			Params: []CatalogParam{
				queryParam("id", "string", "The ID of the subscription to delete."),
			},
		},
		{
			Name:        "get_superchatevents",
			Description: "Lists Super Chat events for the authenticated user's channel.",
			Method:      "GET",
			Path:        "/superChatEvents",
			Params: []CatalogParam{
				queryParam("hl", "string", "Language code for localized display strings."),
				queryParam("maxResults", "number", "Maximum number of items to return per page."),
				queryParam("pageToken", "string", "Token identifying the page of results to return."),
				queryParam("part", "string", "SuperChatEvent resource parts to include."),
			},
		},
		{
			Name:        "add_thumbnails_set",
			Description: "Sets a custom thumbnail for a video.",
			Method:      "POST",
			Path:        "/thumbnails/set",
			Params: []CatalogParam{
				ownerParam(),
				queryParam("videoId", "string", "The ID of the video the thumbnail applies to."),
			},
		},
		{
			Name:        "get_video_abuse_report_reasons",
			Description: "Lists the reasons that can be used to report abusive videos.",
			Method:      "GET",
			Path:        "/videoAbuseReportReasons",
			Params: []CatalogParam{
				queryParam("hl", "string", "Language code for localized reason text."),
				queryParam("part", "string", "VideoAbuseReportReason resource parts to include."),
			},
		},
		{
			Name:        "get_veocategories",
			Description: "Lists the video categories available on YouTube.",
			Method:      "GET",
			Path:        "/videoCategories",
			Params: []CatalogParam{
				queryParam("hl", "string", "Language code for localized category titles."),
				queryParam("id", "string", "Comma-separated video category IDs to retrieve."),
				queryParam("part", "string", "VideoCategory resource parts to include."),
				queryParam("regionCode", "string", "ISO 3166-1 alpha-2 country code to list categories for."),
			},
		},
		{
			Name:        "delete_groupitems",
			Description: "Deletes an item from an Analytics group.",
			Method:      "DELETE",
			Path:        "/groupItems",
			Params: []CatalogParam{
				queryParam("id", "string", "The ID of the group item to delete."),
				ownerParam(),
			},
		},
		{
			Name:        "delete_groups",
			Description: "Deletes an Analytics group.",
			Method:      "DELETE",
			Path:        "/groups",
			Params: []CatalogParam{
				queryParam("id", "string", "The ID of the group to delete."),
				ownerParam(),
			},
		},
		{
			Name:        "get_reports",
			Description: "Retrieves an Analytics report based on the requested metrics, dimensions, and filters.",
			Method:      "GET",
			Path:        "/reports",
			Params: []CatalogParam{
				queryParam("currency", "string", "Currency for monetary metrics (ISO 4217)."),
				queryParam("dimensions", "string", "Comma-separated list of report dimensions."),
				queryParam("end", "string", "End date of the report data range."),
				queryParam("filters", "string", "Filters to apply to the report data."),
				queryParam("ids", "string", "Channel or content owner the report is generated for."),
				queryParam("include", "string", "Additional data to include, such as historical channel data."),
				queryParam("max", "number", "Maximum number of rows to return."),
				queryParam("metrics", "string", "Comma-separated list of report metrics."),
				queryParam("sort", "string", "Comma-separated list of dimensions or metrics to sort by."),
				queryParam("start", "string", "Start date of the report data range."),
			},
		},
	}
}
