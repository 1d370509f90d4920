package lens

// GraphQL documents for the Lens API. Selections intentionally request the
// full field bags the API offers; the output pipeline decides what an agent
// actually sees, and the resource read boundary serves these verbatim.

const accountFragment = `
fragment AccountFields on Account {
  __typename
  address
  owner
  createdAt
  username {
    __typename
    id
    value
    localName
    namespace
    ownedBy
    timestamp
  }
  metadata {
    __typename
    name
    bio
    picture
    coverPicture
    attributes {
      key
      value
    }
  }
  operations {
    __typename
    id
    isFollowedByMe
    isFollowingMe
  }
  score
}
`

const accountStatsFragment = `
fragment AccountStatsFields on AccountStats {
  __typename
  graphFollowStats {
    followers
    following
  }
  feedStats {
    posts
    comments
    reposts
    quotes
    reactions
    collects
  }
}
`

const postFragment = `
fragment PostFields on Post {
  __typename
  id
  slug
  timestamp
  contentUri
  snapshotUrl
  isDeleted
  isEdited
  author {
    ...AccountFields
  }
  app {
    __typename
    address
    metadata {
      name
      logo
    }
  }
  feed {
    __typename
    address
  }
  metadata {
    __typename
    id
    content
    locale
    tags
    mainContentFocus
    attachments {
      item
      type
    }
  }
  stats {
    __typename
    bookmarks
    collects
    comments
    quotes
    reposts
    upvotes
    downvotes
  }
  root {
    ... on Post {
      id
    }
  }
  commentOn {
    ... on Post {
      id
    }
  }
  quoteOf {
    ... on Post {
      id
    }
  }
  operations {
    __typename
    id
    hasBookmarked
    hasReacted
    hasReposted
  }
}
`

const groupFragment = `
fragment GroupFields on Group {
  __typename
  address
  timestamp
  owner
  metadata {
    __typename
    id
    name
    slug
    description
    icon
  }
  feed {
    address
  }
  operations {
    __typename
    id
    isMember
  }
}
`

const appFragment = `
fragment AppFields on App {
  __typename
  address
  owner
  createdAt
  defaultFeedAddress
  graphAddress
  namespaceAddress
  sponsorshipAddress
  treasuryAddress
  verificationEnabled
  metadata {
    __typename
    name
    tagline
    description
    logo
    url
    developer
    platforms
    privacyPolicy
    termsOfService
  }
}
`

const usernameFragment = `
fragment UsernameFields on Username {
  __typename
  id
  value
  localName
  namespace
  linkedTo
  ownedBy
  timestamp
}
`

const pageInfoFragment = `
fragment PageInfoFields on PaginatedResultInfo {
  __typename
  prev
  next
}
`

const searchAccountsQuery = accountFragment + pageInfoFragment + `
query SearchAccounts($query: String!, $pageSize: PageSize!, $cursor: Cursor) {
  accounts(
    request: {
      filter: { searchBy: { localNameQuery: $query } }
      pageSize: $pageSize
      cursor: $cursor
    }
  ) {
    items {
      ...AccountFields
    }
    pageInfo {
      ...PageInfoFields
    }
  }
}
`

const searchPostsQuery = accountFragment + postFragment + pageInfoFragment + `
query SearchPosts($query: String!, $pageSize: PageSize!, $cursor: Cursor) {
  posts(
    request: {
      filter: { searchQuery: $query }
      pageSize: $pageSize
      cursor: $cursor
    }
  ) {
    items {
      ...PostFields
    }
    pageInfo {
      ...PageInfoFields
    }
  }
}
`

const searchGroupsQuery = groupFragment + pageInfoFragment + `
query SearchGroups($query: String!, $pageSize: PageSize!, $cursor: Cursor) {
  groups(
    request: {
      filter: { searchQuery: $query }
      pageSize: $pageSize
      cursor: $cursor
    }
  ) {
    items {
      ...GroupFields
    }
    pageInfo {
      ...PageInfoFields
    }
  }
}
`

const searchAppsQuery = appFragment + pageInfoFragment + `
query SearchApps($query: String, $pageSize: PageSize!, $cursor: Cursor) {
  apps(
    request: {
      filter: { searchQuery: $query }
      pageSize: $pageSize
      cursor: $cursor
    }
  ) {
    items {
      ...AppFields
    }
    pageInfo {
      ...PageInfoFields
    }
  }
}
`

const accountQuery = accountFragment + `
query Account($address: EvmAddress, $username: UsernameInput) {
  account(request: { address: $address, username: $username }) {
    ...AccountFields
  }
}
`

const accountStatsQuery = accountStatsFragment + `
query AccountStats($address: EvmAddress!) {
  accountStats(request: { account: $address }) {
    ...AccountStatsFields
  }
}
`

const followersQuery = accountFragment + pageInfoFragment + `
query Followers($address: EvmAddress!, $pageSize: PageSize!, $cursor: Cursor) {
  followers(
    request: { account: $address, pageSize: $pageSize, cursor: $cursor }
  ) {
    items {
      __typename
      follower {
        ...AccountFields
      }
      followedOn
    }
    pageInfo {
      ...PageInfoFields
    }
  }
}
`

const followingQuery = accountFragment + pageInfoFragment + `
query Following($address: EvmAddress!, $pageSize: PageSize!, $cursor: Cursor) {
  following(
    request: { account: $address, pageSize: $pageSize, cursor: $cursor }
  ) {
    items {
      __typename
      following {
        ...AccountFields
      }
      followedOn
    }
    pageInfo {
      ...PageInfoFields
    }
  }
}
`

const postQuery = accountFragment + postFragment + `
query Post($id: PostId!) {
  post(request: { post: $id }) {
    ...PostFields
  }
}
`

const postReactionsQuery = accountFragment + pageInfoFragment + `
query PostReactions($id: PostId!, $pageSize: PageSize!, $cursor: Cursor) {
  postReactions(
    request: { post: $id, pageSize: $pageSize, cursor: $cursor }
  ) {
    items {
      __typename
      account {
        ...AccountFields
      }
      reactions {
        reaction
        reactedAt
      }
    }
    pageInfo {
      ...PageInfoFields
    }
  }
}
`

const postReferencesQuery = accountFragment + postFragment + pageInfoFragment + `
query PostReferences($id: PostId!, $types: [PostReferenceType!]!, $pageSize: PageSize!, $cursor: Cursor) {
  postReferences(
    request: {
      referencedPost: $id
      referenceTypes: $types
      pageSize: $pageSize
      cursor: $cursor
    }
  ) {
    items {
      ...PostFields
    }
    pageInfo {
      ...PageInfoFields
    }
  }
}
`

const timelineQuery = accountFragment + postFragment + pageInfoFragment + `
query Timeline($address: EvmAddress!, $pageSize: PageSize!, $cursor: Cursor) {
  timeline(
    request: { account: $address, pageSize: $pageSize, cursor: $cursor }
  ) {
    items {
      __typename
      id
      primary {
        ...PostFields
      }
      comments {
        ...PostFields
      }
      reposts {
        ...PostFields
      }
    }
    pageInfo {
      ...PageInfoFields
    }
  }
}
`

const groupsQuery = groupFragment + pageInfoFragment + `
query Groups($member: EvmAddress, $pageSize: PageSize!, $cursor: Cursor) {
  groups(
    request: {
      filter: { member: $member }
      pageSize: $pageSize
      cursor: $cursor
    }
  ) {
    items {
      ...GroupFields
    }
    pageInfo {
      ...PageInfoFields
    }
  }
}
`

const usernamesQuery = usernameFragment + pageInfoFragment + `
query Usernames($owner: EvmAddress!, $pageSize: PageSize!, $cursor: Cursor) {
  usernames(
    request: {
      filter: { ownedBy: $owner }
      pageSize: $pageSize
      cursor: $cursor
    }
  ) {
    items {
      ...UsernameFields
    }
    pageInfo {
      ...PageInfoFields
    }
  }
}
`
